package credentials

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewPartnerTokenSource_MissingCredentials(t *testing.T) {
	_, err := NewPartnerTokenSource("https://auth", "", "")
	if !errors.Is(err, ErrMissingPartnerCredentials) {
		t.Fatalf("expected ErrMissingPartnerCredentials, got %v", err)
	}
	if !strings.Contains(err.Error(), "VSK_CLIENT_ID") || !strings.Contains(err.Error(), "VSK_CLIENT_SECRET") {
		t.Fatalf("expected error to name missing variables, got %v", err)
	}

	_, err = NewPartnerTokenSource("https://auth", "id", "")
	if err == nil || strings.Contains(err.Error(), "VSK_CLIENT_ID") {
		t.Fatalf("expected only VSK_CLIENT_SECRET named, got %v", err)
	}
}

func TestPartnerTokenSource_RetriesThenSucceeds(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oauth2/token" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("grant_type") != "client_credentials" {
			t.Fatalf("unexpected grant_type: %s", r.PostForm.Get("grant_type"))
		}
		if atomic.AddInt32(&calls, 1) <= 2 {
			http.Error(w, "temporary", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"partner-token"}`))
	}))
	defer srv.Close()

	src, err := NewPartnerTokenSource(srv.URL, "id", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var delays []time.Duration
	src.sleep = func(d time.Duration) { delays = append(delays, d) }

	tok, err := src.Token(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != "partner-token" {
		t.Fatalf("unexpected token: %q", tok)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", calls)
	}
	if len(delays) != 2 || delays[0] != time.Second || delays[1] != 2*time.Second {
		t.Fatalf("expected backoff 1s then 2s, got %v", delays)
	}
}

func TestPartnerTokenSource_ExhaustsRetriesWithLastError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "auth broken", http.StatusUnauthorized)
	}))
	defer srv.Close()

	src, err := NewPartnerTokenSource(srv.URL, "id", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src.sleep = func(time.Duration) {}

	_, err = src.Token(context.Background())
	if err == nil {
		t.Fatalf("expected error after exhausted retries")
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", calls)
	}
	// The last underlying error comes back as-is, not wrapped in a generic one.
	if !strings.Contains(err.Error(), "status 401") || !strings.Contains(err.Error(), "auth broken") {
		t.Fatalf("expected last upstream error verbatim, got %v", err)
	}
}

func TestPartnerTokenSource_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	src, err := NewPartnerTokenSource(srv.URL, "id", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src.sleep = func(time.Duration) {}

	if _, err := src.Token(context.Background()); err == nil {
		t.Fatalf("expected error for empty access_token")
	}
}
