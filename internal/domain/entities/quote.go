package entities

// SubjectTypePerson is the discriminator the partner API expects on every
// person sub-object. The normalizer always stamps it, overriding client input.
const SubjectTypePerson = "PERSON"

// Person carries heterogeneous client-submitted person fields. Kept as a map
// because partner products vary in which attributes they accept; the
// normalizer only guarantees the subjectType tag.
type Person map[string]interface{}

type Product struct {
	Code string `json:"code"`
}

// QuoteInput is the client-submitted shape before normalization. Covers keep
// sumInsured untyped because clients send numbers, numeric strings or nothing.
type QuoteInput struct {
	Product       *Product            `json:"product,omitempty"`
	StartDate     string              `json:"startDate"`
	EndDate       string              `json:"endDate"`
	IssueDate     string              `json:"issueDate,omitempty"`
	PolicyHolder  *PolicyHolderInput  `json:"policyHolder,omitempty"`
	InsuredObject *InsuredObjectInput `json:"insuredObject,omitempty"`
}

type PolicyHolderInput struct {
	Person  Person `json:"person,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type InsuredObjectInput struct {
	Covers   []CoverInput   `json:"covers"`
	Insureds []InsuredInput `json:"insureds"`
}

type CoverInput struct {
	SumInsured interface{} `json:"sumInsured,omitempty"`
}

type InsuredInput struct {
	Person            Person                   `json:"person,omitempty"`
	AdditionalFactors []map[string]interface{} `json:"additionalFactors,omitempty"`
}

// QuoteRequest is the canonical payload sent to the partner API.
type QuoteRequest struct {
	Product       Product       `json:"product"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	IssueDate     string        `json:"issueDate"`
	PolicyHolder  PolicyHolder  `json:"policyHolder"`
	InsuredObject InsuredObject `json:"insuredObject"`
}

type PolicyHolder struct {
	Person  Person `json:"person"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type InsuredObject struct {
	Covers   []Cover   `json:"covers"`
	Insureds []Insured `json:"insureds"`
}

type Cover struct {
	SumInsured float64 `json:"sumInsured"`
}

type Insured struct {
	Person            Person                   `json:"person"`
	AdditionalFactors []map[string]interface{} `json:"additionalFactors,omitempty"`
}
