package entities

// QuoteResult is the partner's answer to a calculation request.
type QuoteResult struct {
	Premium       float64       `json:"premium"`
	DraftID       string        `json:"draftId"`
	InsuredObject InsuredObject `json:"insuredObject"`
}

// Policy is returned by the partner on issuance. PolicyNumber is the durable
// external identifier used by every subsequent call (payment, documents).
type Policy struct {
	PolicyNumber string  `json:"policyNumber"`
	Premium      float64 `json:"premium"`
	DraftID      string  `json:"draftId"`
}

// Payment is the partner's answer to an installment payment request.
type Payment struct {
	PaymentLink  string  `json:"paymentLink"`
	PolicyNumber string  `json:"policyNumber"`
	Premium      float64 `json:"premium"`
	ExternalID   string  `json:"externalId"`
}

// PaymentParams parameterizes a pay-installment call.
type PaymentParams struct {
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"paymentType"`
	SuccessURL  string  `json:"successUrl"`
	FailURL     string  `json:"failUrl"`
	ExternalID  string  `json:"externalId"`
}
