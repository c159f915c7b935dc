package insurance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/domain/entities"
	"github.com/Yamlte/VSK-Insurance-API-Handler/pkg"
)

func quoteRequest() entities.QuoteRequest {
	return entities.QuoteRequest{
		Product:   entities.Product{Code: "BOX"},
		StartDate: "2025-02-01",
		EndDate:   "2026-01-31",
		IssueDate: "2025-01-15T23:59:59+03:00",
		PolicyHolder: entities.PolicyHolder{
			Person: entities.Person{"subjectType": "PERSON", "lastName": "Ivanov"},
		},
		InsuredObject: entities.InsuredObject{
			Covers:   []entities.Cover{{SumInsured: 100000}},
			Insureds: []entities.Insured{{Person: entities.Person{"subjectType": "PERSON"}}},
		},
	}
}

func TestVSKGateway_Quote(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody = mustRead(t, r)
		_, _ = w.Write([]byte(`{"premium":2500.5,"draftId":"D-77"}`))
	}))
	defer srv.Close()

	g := NewVSKGateway(srv.URL)
	out, err := g.Quote(context.Background(), "tok", quoteRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/v2/policies/calculate" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	if !bytes.Contains(gotBody, []byte(`"PERSON"`)) {
		t.Fatalf("request body missing payload: %s", gotBody)
	}
	if out.Premium != 2500.5 || out.DraftID != "D-77" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestVSKGateway_IssuePolicy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/policies" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"policyNumber":"P-1","premium":2500}`))
	}))
	defer srv.Close()

	g := NewVSKGateway(srv.URL)
	out, err := g.IssuePolicy(context.Background(), "tok", quoteRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.PolicyNumber != "P-1" || out.Premium != 2500 {
		t.Fatalf("unexpected policy: %+v", out)
	}
}

func TestVSKGateway_PayInstallment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/policies/P-1/installments/1/pay" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var params entities.PaymentParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			t.Fatalf("decode params: %v", err)
		}
		if params.Amount != 2500 || params.ExternalID != "ext-1" {
			t.Fatalf("unexpected params: %+v", params)
		}
		_, _ = w.Write([]byte(`{"paymentLink":"https://pay.example/abc"}`))
	}))
	defer srv.Close()

	g := NewVSKGateway(srv.URL)
	out, err := g.PayInstallment(context.Background(), "tok", "P-1", 1, entities.PaymentParams{
		Amount:     2500,
		ExternalID: "ext-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.PaymentLink != "https://pay.example/abc" {
		t.Fatalf("unexpected link: %s", out.PaymentLink)
	}
	// The gateway backfills the fields the upstream response omits.
	if out.PolicyNumber != "P-1" || out.Premium != 2500 || out.ExternalID != "ext-1" {
		t.Fatalf("unexpected payment: %+v", out)
	}
}

func TestVSKGateway_FetchDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/policies/P-1/documents/POLICY" || r.Method != http.MethodGet {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"documentBase64":"JVBERi0="}`))
	}))
	defer srv.Close()

	g := NewVSKGateway(srv.URL)
	doc, err := g.FetchDocument(context.Background(), "tok", "P-1", "POLICY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != "JVBERi0=" {
		t.Fatalf("unexpected document: %q", doc)
	}
}

func TestVSKGateway_FetchPrintForm(t *testing.T) {
	pdf := []byte("%PDF-1.4 raw")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/printforms/policy/P-1" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Fatalf("unexpected auth header: %s", r.Header.Get("Authorization"))
		}
		_, _ = w.Write(pdf)
	}))
	defer srv.Close()

	g := NewVSKGateway(srv.URL)
	body, err := g.FetchPrintForm(context.Background(), "tok", "P-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(body, pdf) {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestVSKGateway_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"bad subject"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	g := NewVSKGateway(srv.URL)
	_, err := g.Quote(context.Background(), "tok", quoteRequest())
	var upstream *pkg.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", upstream.StatusCode)
	}
	if upstream.Op != "quote" || upstream.Body != `{"message":"bad subject"}` {
		t.Fatalf("unexpected upstream error: %+v", upstream)
	}
}

func TestVSKGateway_TransportError(t *testing.T) {
	g := NewVSKGateway("http://127.0.0.1:1")
	_, err := g.IssuePolicy(context.Background(), "tok", quoteRequest())
	var upstream *pkg.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != 0 {
		t.Fatalf("transport failure should carry no status, got %d", upstream.StatusCode)
	}
}

func mustRead(t *testing.T, r *http.Request) []byte {
	t.Helper()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return buf.Bytes()
}
