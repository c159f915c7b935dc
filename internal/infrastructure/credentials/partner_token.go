package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrMissingPartnerCredentials = errors.New("missing partner credentials")

const (
	oauthTimeout     = 20 * time.Second
	oauthMaxAttempts = 3
	oauthTokenPath   = "/oauth2/token"
	oauthBackoffUnit = time.Second
)

// PartnerTokenSource performs the OAuth client-credentials exchange against
// the partner auth endpoint. Tokens are deliberately not cached: every
// orchestration invocation re-authenticates. On failure the exchange is
// retried with linearly increasing backoff and the last error is returned
// as-is after the final attempt.

type PartnerTokenSource struct {
	baseURL      string
	clientID     string
	clientSecret string
	client       *http.Client

	// sleep is swappable in tests; it blocks only the calling invocation.
	sleep func(time.Duration)
}

func NewPartnerTokenSource(baseURL, clientID, clientSecret string) (*PartnerTokenSource, error) {
	var missing []string
	if clientID == "" {
		missing = append(missing, "VSK_CLIENT_ID")
	}
	if clientSecret == "" {
		missing = append(missing, "VSK_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingPartnerCredentials, strings.Join(missing, ", "))
	}
	return &PartnerTokenSource{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		client:       &http.Client{Timeout: oauthTimeout},
		sleep:        time.Sleep,
	}, nil
}

func (s *PartnerTokenSource) Token(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= oauthMaxAttempts; attempt++ {
		log.Printf("[credentials][partner] token exchange attempt=%d", attempt)
		tok, err := s.exchange(ctx)
		if err == nil {
			log.Printf("[credentials][partner] token acquired attempt=%d", attempt)
			return tok, nil
		}
		log.Printf("[credentials][partner] token exchange failed attempt=%d err=%v", attempt, err)
		lastErr = err
		if attempt < oauthMaxAttempts {
			s.sleep(time.Duration(attempt) * oauthBackoffUnit)
		}
	}
	return "", lastErr
}

func (s *PartnerTokenSource) exchange(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+oauthTokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("token endpoint status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", errors.New("token endpoint returned no access_token")
	}
	return body.AccessToken, nil
}
