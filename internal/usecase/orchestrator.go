package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/domain/entities"
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingPolicyNumber = errors.New("policy missing")
	ErrPartnerAuth         = errors.New("partner authentication failed")
	ErrRecordFailed        = errors.New("transaction record failed")
	ErrArchiveFailed       = errors.New("document archive failed")
)

const (
	firstInstallment   = 1
	documentTypePolicy = "POLICY"
	defaultPaymentType = "CARD"
)

type CalcResult struct {
	Premium   float64
	RequestID string
	Covers    []entities.Cover
}

type PayResult struct {
	PaymentLink  string
	PolicyNumber string
	Premium      float64
	ID           string
}

type SampleResult struct {
	PolicyNumber string
	Premium      float64
	PdfURL       string
	ExpiresAt    time.Time
}

// IInsuranceOrchestrator sequences the partner calls for each inbound action.
//
// Steps inside one invocation run strictly in order because each depends on
// the previous step's output. A fresh partner token is acquired per
// invocation; the DB session is acquired only on persistence-needing paths
// and released on every exit path.
type IInsuranceOrchestrator interface {
	Calc(ctx context.Context, input entities.QuoteInput) (CalcResult, error)
	Pay(ctx context.Context, input entities.QuoteInput) (PayResult, error)
	Sample(ctx context.Context, input entities.QuoteInput) (SampleResult, error)
	PolicyDocument(ctx context.Context, policyNumber string) ([]byte, error)
}

type InsuranceOrchestrator struct {
	tokens   interfaces.ITokenSource
	gateway  interfaces.IPartnerGateway
	recorder interfaces.ITransactionRecorder
	archiver interfaces.IDocumentArchiver

	successURL string
	failURL    string

	now   func() time.Time
	newID func() string
}

var _ IInsuranceOrchestrator = (*InsuranceOrchestrator)(nil)

func NewInsuranceOrchestrator(
	tokens interfaces.ITokenSource,
	gateway interfaces.IPartnerGateway,
	recorder interfaces.ITransactionRecorder,
	archiver interfaces.IDocumentArchiver,
	successURL, failURL string,
) *InsuranceOrchestrator {
	return &InsuranceOrchestrator{
		tokens:     tokens,
		gateway:    gateway,
		recorder:   recorder,
		archiver:   archiver,
		successURL: successURL,
		failURL:    failURL,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

func (o *InsuranceOrchestrator) Calc(ctx context.Context, input entities.QuoteInput) (CalcResult, error) {
	log.Printf("[orchestrator] calc start")
	token, req, err := o.prepare(ctx, input)
	if err != nil {
		return CalcResult{}, err
	}

	res, err := o.gateway.Quote(ctx, token, req)
	if err != nil {
		return CalcResult{}, err
	}

	session, err := o.recorder.Session(ctx)
	if err != nil {
		return CalcResult{}, fmt.Errorf("%w: %w", ErrRecordFailed, err)
	}
	defer session.Release()

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return CalcResult{}, fmt.Errorf("%w: %w", ErrRecordFailed, err)
	}
	respJSON, err := json.Marshal(res)
	if err != nil {
		return CalcResult{}, fmt.Errorf("%w: %w", ErrRecordFailed, err)
	}
	rec := entities.CalculationRecord{
		ID:       o.newID(),
		Ts:       o.now().UTC(),
		Price:    res.Premium,
		Request:  reqJSON,
		Response: respJSON,
	}
	if err := session.RecordCalculation(ctx, rec); err != nil {
		return CalcResult{}, fmt.Errorf("%w: %w", ErrRecordFailed, err)
	}

	log.Printf("[orchestrator] calc success draft_id=%s premium=%.2f", res.DraftID, res.Premium)
	return CalcResult{Premium: res.Premium, RequestID: res.DraftID, Covers: res.InsuredObject.Covers}, nil
}

func (o *InsuranceOrchestrator) Pay(ctx context.Context, input entities.QuoteInput) (PayResult, error) {
	log.Printf("[orchestrator] pay start")
	token, req, err := o.prepare(ctx, input)
	if err != nil {
		return PayResult{}, err
	}

	policy, err := o.gateway.IssuePolicy(ctx, token, req)
	if err != nil {
		return PayResult{}, err
	}

	externalID := o.newID()
	payment, err := o.gateway.PayInstallment(ctx, token, policy.PolicyNumber, firstInstallment, entities.PaymentParams{
		Amount:      policy.Premium,
		PaymentType: defaultPaymentType,
		SuccessURL:  o.successURL,
		FailURL:     o.failURL,
		ExternalID:  externalID,
	})
	if err != nil {
		// The policy stays valid at the partner; there is no compensation.
		return PayResult{}, err
	}

	session, err := o.recorder.Session(ctx)
	if err != nil {
		return PayResult{}, fmt.Errorf("%w: %w", ErrRecordFailed, err)
	}
	defer session.Release()

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return PayResult{}, fmt.Errorf("%w: %w", ErrRecordFailed, err)
	}
	respJSON, err := json.Marshal(struct {
		Policy  entities.Policy  `json:"policy"`
		Payment entities.Payment `json:"payment"`
	}{policy, payment})
	if err != nil {
		return PayResult{}, fmt.Errorf("%w: %w", ErrRecordFailed, err)
	}
	rec := entities.PaymentRecord{
		ID:           o.newID(),
		Ts:           o.now().UTC(),
		Premium:      policy.Premium,
		PolicyNumber: policy.PolicyNumber,
		ExternalID:   externalID,
		Request:      reqJSON,
		Response:     respJSON,
	}
	if err := session.RecordPayment(ctx, rec); err != nil {
		return PayResult{}, fmt.Errorf("%w: %w", ErrRecordFailed, err)
	}

	log.Printf("[orchestrator] pay success policy_number=%s external_id=%s", policy.PolicyNumber, externalID)
	return PayResult{
		PaymentLink:  payment.PaymentLink,
		PolicyNumber: policy.PolicyNumber,
		Premium:      policy.Premium,
		ID:           externalID,
	}, nil
}

func (o *InsuranceOrchestrator) Sample(ctx context.Context, input entities.QuoteInput) (SampleResult, error) {
	log.Printf("[orchestrator] sample start")
	token, req, err := o.prepare(ctx, input)
	if err != nil {
		return SampleResult{}, err
	}

	policy, err := o.gateway.IssuePolicy(ctx, token, req)
	if err != nil {
		return SampleResult{}, err
	}

	doc, err := o.gateway.FetchDocument(ctx, token, policy.PolicyNumber, documentTypePolicy)
	if err != nil {
		return SampleResult{}, err
	}

	stored, err := o.archiver.Archive(ctx, policy.PolicyNumber, doc)
	if err != nil {
		return SampleResult{}, fmt.Errorf("%w: %w", ErrArchiveFailed, err)
	}

	log.Printf("[orchestrator] sample success policy_number=%s key=%s", policy.PolicyNumber, stored.Key)
	return SampleResult{
		PolicyNumber: policy.PolicyNumber,
		Premium:      policy.Premium,
		PdfURL:       stored.SignedURL,
		ExpiresAt:    stored.ExpiresAt,
	}, nil
}

func (o *InsuranceOrchestrator) PolicyDocument(ctx context.Context, policyNumber string) ([]byte, error) {
	policyNumber = strings.TrimSpace(policyNumber)
	if policyNumber == "" {
		return nil, ErrMissingPolicyNumber
	}
	log.Printf("[orchestrator] pdf start policy_number=%s", policyNumber)

	token, err := o.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPartnerAuth, err)
	}

	raw, err := o.gateway.FetchPrintForm(ctx, token, policyNumber)
	if err != nil {
		return nil, err
	}
	log.Printf("[orchestrator] pdf success policy_number=%s bytes=%d", policyNumber, len(raw))
	return raw, nil
}

// prepare runs the shared head of every normalize-and-call flow: fresh
// partner token, then normalization of the client input.
func (o *InsuranceOrchestrator) prepare(ctx context.Context, input entities.QuoteInput) (string, entities.QuoteRequest, error) {
	token, err := o.tokens.Token(ctx)
	if err != nil {
		return "", entities.QuoteRequest{}, fmt.Errorf("%w: %w", ErrPartnerAuth, err)
	}
	req, err := BuildQuoteRequest(input, o.now())
	if err != nil {
		return "", entities.QuoteRequest{}, err
	}
	return token, req, nil
}
