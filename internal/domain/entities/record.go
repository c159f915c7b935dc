package entities

import (
	"encoding/json"
	"time"
)

// Transaction records are the audit trail: one row per orchestration step,
// written only after the external call it documents succeeded, append-only.
//
// Storage model (Postgres):
//   - insurance_calculations: id (uuid PK), ts, price, request, response
//   - insurance_payments:     id (uuid PK), ts, premium, policy_number,
//     external_id, request, response
//
// Request/Response keep the full serialized bodies so any step can be
// reconstructed from the row alone.

type CalculationRecord struct {
	ID       string          `json:"id"`
	Ts       time.Time       `json:"ts"`
	Price    float64         `json:"price"`
	Request  json.RawMessage `json:"request"`
	Response json.RawMessage `json:"response"`
}

type PaymentRecord struct {
	ID           string          `json:"id"`
	Ts           time.Time       `json:"ts"`
	Premium      float64         `json:"premium"`
	PolicyNumber string          `json:"policy_number"`
	ExternalID   string          `json:"external_id"`
	Request      json.RawMessage `json:"request"`
	Response     json.RawMessage `json:"response"`
}
