package credentials

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestInfraTokenSource_ConcurrentCallersSingleFetch(t *testing.T) {
	var fetches int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Metadata-Flavor") != "Google" {
			t.Errorf("missing Metadata-Flavor header")
		}
		atomic.AddInt32(&fetches, 1)
		time.Sleep(20 * time.Millisecond) // widen the race window
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"infra-token"}`))
	}))
	defer srv.Close()

	src := NewInfraTokenSource(srv.URL)

	const callers = 16
	var wg sync.WaitGroup
	tokens := make([]string, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = src.Token(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: unexpected error: %v", i, errs[i])
		}
		if tokens[i] != "infra-token" {
			t.Fatalf("caller %d: unexpected token %q", i, tokens[i])
		}
	}
	if got := atomic.LoadInt32(&fetches); got != 1 {
		t.Fatalf("expected exactly 1 metadata fetch, got %d", got)
	}
}

func TestInfraTokenSource_CachedWithinTTL(t *testing.T) {
	var fetches int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fetches, 1)
		_, _ = w.Write([]byte(`{"access_token":"infra-token"}`))
	}))
	defer srv.Close()

	src := NewInfraTokenSource(srv.URL)
	for i := 0; i < 5; i++ {
		if _, err := src.Token(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := atomic.LoadInt32(&fetches); got != 1 {
		t.Fatalf("expected cached token after first fetch, got %d fetches", got)
	}
}

func TestInfraTokenSource_RefreshesAfterTTL(t *testing.T) {
	var fetches int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fetches, 1)
		_, _ = w.Write([]byte(`{"access_token":"infra-token"}`))
	}))
	defer srv.Close()

	src := NewInfraTokenSource(srv.URL)
	src.ttl = 10 * time.Millisecond

	if _, err := src.Token(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := src.Token(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&fetches); got != 2 {
		t.Fatalf("expected refresh after ttl, got %d fetches", got)
	}
}

func TestInfraTokenSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	src := NewInfraTokenSource(srv.URL)
	if _, err := src.Token(context.Background()); !errors.Is(err, ErrMetadataUnreachable) {
		t.Fatalf("expected ErrMetadataUnreachable, got %v", err)
	}

	down := NewInfraTokenSource("http://127.0.0.1:1")
	if _, err := down.Token(context.Background()); !errors.Is(err, ErrMetadataUnreachable) {
		t.Fatalf("expected ErrMetadataUnreachable for connection failure, got %v", err)
	}
}

func TestInfraTokenSource_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":""}`))
	}))
	defer srv.Close()

	src := NewInfraTokenSource(srv.URL)
	if _, err := src.Token(context.Background()); !errors.Is(err, ErrMetadataEmptyToken) {
		t.Fatalf("expected ErrMetadataEmptyToken, got %v", err)
	}
}
