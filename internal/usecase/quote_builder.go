package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/domain/entities"
)

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidSumInsured    = errors.New("invalid sumInsured value")
)

const defaultProductCode = "BOX"

// SumInsuredTiers is the canonical closed set of accepted cover sums. The
// first tier doubles as the substitution value when a client sends nothing
// usable. Tier membership itself is only enforced when the builder is
// created with WithTierValidation.
var SumInsuredTiers = []float64{50000, 100000, 250000, 500000}

const minSumInsured = 50000

// issueZone is a fixed policy of the partner contract, not configuration:
// issue dates are always the calendar day in MSK, closed at end of day.
var issueZone = time.FixedZone("MSK", 3*60*60)

const issueDateSuffix = "T23:59:59+03:00"

type builderOptions struct {
	validateTiers bool
}

type BuilderOption func(*builderOptions)

// WithTierValidation rejects covers whose coerced sum is outside
// SumInsuredTiers instead of passing them through.
func WithTierValidation() BuilderOption {
	return func(o *builderOptions) { o.validateTiers = true }
}

// BuildQuoteRequest normalizes heterogeneous client input into the canonical
// partner payload. Pure: no I/O, the clock comes in as an argument. Client
// supplied issueDate is always overridden.
func BuildQuoteRequest(input entities.QuoteInput, now time.Time, opts ...BuilderOption) (entities.QuoteRequest, error) {
	var o builderOptions
	for _, opt := range opts {
		opt(&o)
	}

	if input.PolicyHolder == nil || len(input.PolicyHolder.Person) == 0 {
		return entities.QuoteRequest{}, fmt.Errorf("%w: policyHolder.person", ErrMissingRequiredField)
	}
	if input.InsuredObject == nil || len(input.InsuredObject.Covers) == 0 {
		return entities.QuoteRequest{}, fmt.Errorf("%w: insuredObject.covers", ErrMissingRequiredField)
	}
	if len(input.InsuredObject.Insureds) == 0 {
		return entities.QuoteRequest{}, fmt.Errorf("%w: insuredObject.insureds", ErrMissingRequiredField)
	}

	product := entities.Product{Code: defaultProductCode}
	if input.Product != nil && input.Product.Code != "" {
		product = *input.Product
	}

	covers := make([]entities.Cover, 0, len(input.InsuredObject.Covers))
	for i, c := range input.InsuredObject.Covers {
		sum := coerceSumInsured(c.SumInsured)
		if o.validateTiers && !isKnownTier(sum) {
			return entities.QuoteRequest{}, fmt.Errorf("%w: covers[%d]", ErrInvalidSumInsured, i)
		}
		covers = append(covers, entities.Cover{SumInsured: sum})
	}

	insureds := make([]entities.Insured, 0, len(input.InsuredObject.Insureds))
	for i, ins := range input.InsuredObject.Insureds {
		if len(ins.Person) == 0 {
			return entities.QuoteRequest{}, fmt.Errorf("%w: insuredObject.insureds[%d].person", ErrMissingRequiredField, i)
		}
		insureds = append(insureds, entities.Insured{
			Person:            taggedPerson(ins.Person),
			AdditionalFactors: ins.AdditionalFactors,
		})
	}

	return entities.QuoteRequest{
		Product:   product,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		IssueDate: issueDate(now),
		PolicyHolder: entities.PolicyHolder{
			Person:  taggedPerson(input.PolicyHolder.Person),
			Address: input.PolicyHolder.Address,
			Phone:   input.PolicyHolder.Phone,
			Email:   input.PolicyHolder.Email,
		},
		InsuredObject: entities.InsuredObject{
			Covers:   covers,
			Insureds: insureds,
		},
	}, nil
}

// issueDate is always "today at 23:59:59" in the fixed civil zone, whatever
// the invocation wall-clock time within that day.
func issueDate(now time.Time) string {
	return now.In(issueZone).Format("2006-01-02") + issueDateSuffix
}

// taggedPerson shallow-merges the client person with the fixed subject-type
// discriminator. The tag wins on conflict.
func taggedPerson(p entities.Person) entities.Person {
	out := make(entities.Person, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out["subjectType"] = entities.SubjectTypePerson
	return out
}

// coerceSumInsured turns whatever the client sent into a number. Anything
// falsy (absent, null, zero, non-numeric) collapses to the minimum tier.
// Conflating "explicitly zero" with "not provided" is intentional and kept
// from the original contract.
func coerceSumInsured(v interface{}) float64 {
	var sum float64
	switch n := v.(type) {
	case float64:
		sum = n
	case int:
		sum = float64(n)
	case json.Number:
		sum, _ = n.Float64()
	case string:
		sum, _ = strconv.ParseFloat(n, 64)
	}
	if sum <= 0 {
		return minSumInsured
	}
	return sum
}

func isKnownTier(sum float64) bool {
	for _, t := range SumInsuredTiers {
		if sum == t {
			return true
		}
	}
	return false
}
