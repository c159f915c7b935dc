package request

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/domain/entities"
)

var (
	ErrEmptyBody   = errors.New("request body is empty")
	ErrInvalidBody = errors.New("request body is not valid json")
)

// Envelope mirrors the hosting platform's function event shape: the action
// payload may arrive wrapped, optionally base64-encoded.
type Envelope struct {
	Body            string `json:"body"`
	IsBase64Encoded bool   `json:"isBase64Encoded"`
}

// ActionRequest is the inbound action payload. Action selects the
// orchestration flow; Policy is only meaningful for the pdf action.
type ActionRequest struct {
	Action string `json:"action"`
	Policy string `json:"policy"`

	Product       *entities.Product            `json:"product"`
	StartDate     string                       `json:"startDate"`
	EndDate       string                       `json:"endDate"`
	IssueDate     string                       `json:"issueDate"`
	PolicyHolder  *entities.PolicyHolderInput  `json:"policyHolder"`
	InsuredObject *entities.InsuredObjectInput `json:"insuredObject"`
}

// DecodeActionRequest accepts either the action JSON directly or a function
// envelope whose body holds it (base64-decoded when flagged).
func DecodeActionRequest(raw []byte) (ActionRequest, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return ActionRequest{}, ErrEmptyBody
	}
	if !json.Valid(raw) {
		return ActionRequest{}, ErrInvalidBody
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Body != "" {
		inner := []byte(env.Body)
		if env.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(env.Body)
			if err != nil {
				return ActionRequest{}, ErrInvalidBody
			}
			inner = decoded
		}
		return unmarshalAction(inner)
	}

	return unmarshalAction(raw)
}

func unmarshalAction(raw []byte) (ActionRequest, error) {
	var req ActionRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return ActionRequest{}, ErrInvalidBody
	}
	return req, nil
}

func (r ActionRequest) ResolveAction() string {
	return strings.TrimSpace(r.Action)
}

func (r ActionRequest) ResolvePolicyNumber() string {
	return strings.TrimSpace(r.Policy)
}

func (r ActionRequest) ToQuoteInput() entities.QuoteInput {
	return entities.QuoteInput{
		Product:       r.Product,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		IssueDate:     r.IssueDate,
		PolicyHolder:  r.PolicyHolder,
		InsuredObject: r.InsuredObject,
	}
}
