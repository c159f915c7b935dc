package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

var (
	ErrMetadataUnreachable = errors.New("metadata endpoint unreachable")
	ErrMetadataEmptyToken  = errors.New("metadata endpoint returned no token")
)

const (
	metadataTimeout = 2 * time.Second

	// Platform tokens live 1h; refresh a bit early.
	defaultTokenTTL = 50 * time.Minute
)

// InfraTokenSource fetches the platform identity token from the metadata
// service and caches it for its validity window. Concurrent first callers
// collapse into a single fetch; a stale token is refreshed lazily on the next
// Token call, again behind singleflight. The fetch itself is a single
// bounded call with no retry.

type InfraTokenSource struct {
	endpoint string
	client   *http.Client
	ttl      time.Duration

	group singleflight.Group

	mu        sync.RWMutex
	token     string
	fetchedAt time.Time
}

func NewInfraTokenSource(endpoint string) *InfraTokenSource {
	return &InfraTokenSource{
		endpoint: endpoint,
		client:   &http.Client{Timeout: metadataTimeout},
		ttl:      defaultTokenTTL,
	}
}

func (s *InfraTokenSource) Token(ctx context.Context) (string, error) {
	if tok, ok := s.cached(); ok {
		return tok, nil
	}

	v, err, _ := s.group.Do("infra-token", func() (interface{}, error) {
		// Re-check under the flight: a concurrent caller may have refreshed.
		if tok, ok := s.cached(); ok {
			return tok, nil
		}
		tok, err := s.fetch(ctx)
		if err != nil {
			return "", err
		}
		s.mu.Lock()
		s.token = tok
		s.fetchedAt = time.Now()
		s.mu.Unlock()
		return tok, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s *InfraTokenSource) cached() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || time.Since(s.fetchedAt) >= s.ttl {
		return "", false
	}
	return s.token, true
}

func (s *InfraTokenSource) fetch(ctx context.Context) (string, error) {
	log.Printf("[credentials][infra] fetching metadata token")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Metadata-Flavor", "Google")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[credentials][infra] metadata request failed err=%v", err)
		return "", fmt.Errorf("%w: %v", ErrMetadataUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[credentials][infra] metadata request status=%d", resp.StatusCode)
		return "", fmt.Errorf("%w: status %d", ErrMetadataUnreachable, resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMetadataEmptyToken, err)
	}
	if body.AccessToken == "" {
		return "", ErrMetadataEmptyToken
	}
	log.Printf("[credentials][infra] metadata token acquired")
	return body.AccessToken, nil
}
