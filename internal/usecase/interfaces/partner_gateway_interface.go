package interfaces

import (
	"context"

	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/domain/entities"
)

// IPartnerGateway abstracts the partner insurance API (VSK).
//
// All operations are single HTTP calls with bounded timeouts and no retry;
// retry policy lives only in the token source. FetchPrintForm hits the legacy
// versioned endpoint and is intentionally separate from FetchDocument.
type IPartnerGateway interface {
	Quote(ctx context.Context, token string, req entities.QuoteRequest) (entities.QuoteResult, error)
	IssuePolicy(ctx context.Context, token string, req entities.QuoteRequest) (entities.Policy, error)
	PayInstallment(ctx context.Context, token, policyNumber string, installment int, params entities.PaymentParams) (entities.Payment, error)
	FetchDocument(ctx context.Context, token, policyNumber, docType string) (string, error)
	FetchPrintForm(ctx context.Context, token, policyNumber string) ([]byte, error)
}
