package entities

import "time"

// StoredDocument describes an archived policy document in object storage and
// the time-limited link issued for it.
type StoredDocument struct {
	Key         string    `json:"key"`
	ContentType string    `json:"content_type"`
	SignedURL   string    `json:"signed_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}
