package response

import (
	"time"

	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/domain/entities"
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/usecase"
)

type CalcResponse struct {
	Premium   float64          `json:"premium"`
	RequestID string           `json:"requestId"`
	Covers    []entities.Cover `json:"covers"`
}

func FromCalcResult(r usecase.CalcResult) CalcResponse {
	return CalcResponse{
		Premium:   r.Premium,
		RequestID: r.RequestID,
		Covers:    r.Covers,
	}
}

type PayResponse struct {
	PaymentLink  string  `json:"paymentLink"`
	PolicyNumber string  `json:"policyNumber"`
	Premium      float64 `json:"premium"`
	ID           string  `json:"id"`
}

func FromPayResult(r usecase.PayResult) PayResponse {
	return PayResponse{
		PaymentLink:  r.PaymentLink,
		PolicyNumber: r.PolicyNumber,
		Premium:      r.Premium,
		ID:           r.ID,
	}
}

type SampleResponse struct {
	PolicyNumber string    `json:"policyNumber"`
	Premium      float64   `json:"premium"`
	PdfURL       string    `json:"pdfUrl"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func FromSampleResult(r usecase.SampleResult) SampleResponse {
	return SampleResponse{
		PolicyNumber: r.PolicyNumber,
		Premium:      r.Premium,
		PdfURL:       r.PdfURL,
		ExpiresAt:    r.ExpiresAt,
	}
}
