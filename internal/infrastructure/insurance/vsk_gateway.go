package insurance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/domain/entities"
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/usecase/interfaces"
	"github.com/Yamlte/VSK-Insurance-API-Handler/pkg"
)

const partnerCallTimeout = 20 * time.Second

// VSKGateway is the typed client for the partner insurance API.
//
// Each operation is one bearer-authenticated JSON call with a bounded
// timeout and no retry. Failures come back as *pkg.UpstreamError carrying
// the upstream status code and error body.
//
// FetchPrintForm uses the legacy /v1/printforms path, which predates the
// /v2/policies surface. The two document operations must stay separate until
// the provider confirms the legacy endpoint is gone.

type VSKGateway struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IPartnerGateway = (*VSKGateway)(nil)

func NewVSKGateway(baseURL string) *VSKGateway {
	return &VSKGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: partnerCallTimeout},
	}
}

func (g *VSKGateway) Quote(ctx context.Context, token string, req entities.QuoteRequest) (entities.QuoteResult, error) {
	log.Printf("[insurance][gateway] quote start product=%s", req.Product.Code)
	var out entities.QuoteResult
	if err := g.postJSON(ctx, "quote", token, "/v2/policies/calculate", req, &out); err != nil {
		return entities.QuoteResult{}, err
	}
	log.Printf("[insurance][gateway] quote success draft_id=%s premium=%.2f", out.DraftID, out.Premium)
	return out, nil
}

func (g *VSKGateway) IssuePolicy(ctx context.Context, token string, req entities.QuoteRequest) (entities.Policy, error) {
	log.Printf("[insurance][gateway] issue start product=%s", req.Product.Code)
	var out entities.Policy
	if err := g.postJSON(ctx, "issuePolicy", token, "/v2/policies", req, &out); err != nil {
		return entities.Policy{}, err
	}
	log.Printf("[insurance][gateway] issue success policy_number=%s premium=%.2f", out.PolicyNumber, out.Premium)
	return out, nil
}

func (g *VSKGateway) PayInstallment(ctx context.Context, token, policyNumber string, installment int, params entities.PaymentParams) (entities.Payment, error) {
	log.Printf("[insurance][gateway] pay start policy_number=%s installment=%d", policyNumber, installment)
	path := fmt.Sprintf("/v2/policies/%s/installments/%d/pay", policyNumber, installment)
	var out entities.Payment
	if err := g.postJSON(ctx, "payInstallment", token, path, params, &out); err != nil {
		return entities.Payment{}, err
	}
	out.PolicyNumber = policyNumber
	out.Premium = params.Amount
	out.ExternalID = params.ExternalID
	log.Printf("[insurance][gateway] pay success policy_number=%s", policyNumber)
	return out, nil
}

func (g *VSKGateway) FetchDocument(ctx context.Context, token, policyNumber, docType string) (string, error) {
	log.Printf("[insurance][gateway] fetch-document start policy_number=%s type=%s", policyNumber, docType)
	path := fmt.Sprintf("/v2/policies/%s/documents/%s", policyNumber, docType)
	body, err := g.do(ctx, "fetchDocument", token, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	var out struct {
		DocumentBase64 string `json:"documentBase64"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &pkg.UpstreamError{Op: "fetchDocument", Body: "malformed document response"}
	}
	log.Printf("[insurance][gateway] fetch-document success policy_number=%s bytes=%d", policyNumber, len(out.DocumentBase64))
	return out.DocumentBase64, nil
}

func (g *VSKGateway) FetchPrintForm(ctx context.Context, token, policyNumber string) ([]byte, error) {
	log.Printf("[insurance][gateway] fetch-printform start policy_number=%s", policyNumber)
	// Legacy endpoint; returns the PDF bytes directly, not a JSON envelope.
	path := "/v1/printforms/policy/" + policyNumber
	body, err := g.do(ctx, "fetchPrintForm", token, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	log.Printf("[insurance][gateway] fetch-printform success policy_number=%s bytes=%d", policyNumber, len(body))
	return body, nil
}

func (g *VSKGateway) postJSON(ctx context.Context, op, token, path string, payload, out interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	body, err := g.do(ctx, op, token, http.MethodPost, path, raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &pkg.UpstreamError{Op: op, Body: "malformed response: " + err.Error()}
	}
	return nil
}

func (g *VSKGateway) do(ctx context.Context, op, token, method, path string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[insurance][gateway] %s transport failed err=%v", op, err)
		return nil, &pkg.UpstreamError{Op: op, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &pkg.UpstreamError{Op: op, StatusCode: resp.StatusCode, Body: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[insurance][gateway] %s upstream status=%d", op, resp.StatusCode)
		return nil, &pkg.UpstreamError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}
