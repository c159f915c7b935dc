package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/domain/entities"
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/usecase"
)

func TestFromCalcResult(t *testing.T) {
	out := FromCalcResult(usecase.CalcResult{
		Premium:   1234.5,
		RequestID: "D-77",
		Covers:    []entities.Cover{{SumInsured: 100000}},
	})

	raw, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"premium":1234.5`, `"requestId":"D-77"`, `"sumInsured":100000`} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("missing %s in %s", want, raw)
		}
	}
}

func TestFromPayResult(t *testing.T) {
	out := FromPayResult(usecase.PayResult{
		PaymentLink:  "https://pay.example/abc",
		PolicyNumber: "P-1",
		Premium:      2500,
		ID:           "id-2",
	})
	if out.PaymentLink != "https://pay.example/abc" || out.PolicyNumber != "P-1" || out.Premium != 2500 || out.ID != "id-2" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestFromSampleResult(t *testing.T) {
	expires := time.Date(2025, 1, 15, 13, 0, 0, 0, time.UTC)
	out := FromSampleResult(usecase.SampleResult{
		PolicyNumber: "P-1",
		Premium:      2500,
		PdfURL:       "https://storage.example/policies/P-1.pdf?sig=abc",
		ExpiresAt:    expires,
	})
	if out.PdfURL != "https://storage.example/policies/P-1.pdf?sig=abc" || !out.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected response: %+v", out)
	}
}
