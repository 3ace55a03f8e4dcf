package domain

import (
	"fmt"
	"sort"

	"github.com/SscSPs/investor_onboarding_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BeneficiaryType splits a profile's beneficiaries into two independently allocated sets.
type BeneficiaryType string

const (
	BeneficiaryPrimary    BeneficiaryType = "PRIMARY"
	BeneficiaryContingent BeneficiaryType = "CONTINGENT"
)

func (t BeneficiaryType) IsValid() bool {
	return t == BeneficiaryPrimary || t == BeneficiaryContingent
}

// FullAllocation is the total every beneficiary type must reach and may never exceed.
var FullAllocation = decimal.NewFromInt(100)

// percentageScale is the number of decimal places stored for a percentage.
const percentageScale = 2

type Beneficiary struct {
	BeneficiaryID       string          `json:"beneficiaryID"`
	ProfileID           string          `json:"profileID"`
	BeneficiaryType     BeneficiaryType `json:"beneficiaryType"`
	FirstName           string          `json:"firstName"`
	LastName            string          `json:"lastName"`
	Relationship        string          `json:"relationship"`
	DateOfBirth         *string         `json:"dateOfBirth,omitempty"`
	Email               *string         `json:"email,omitempty"`
	Phone               *string         `json:"phone,omitempty"`
	PercentageOfBenefit decimal.Decimal `json:"percentageOfBenefit"`
	AuditFields
}

// ValidateBeneficiaryType rejects anything other than PRIMARY or CONTINGENT.
func ValidateBeneficiaryType(t BeneficiaryType) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: beneficiaryType must be %s or %s, got %q", apperrors.ErrValidation, BeneficiaryPrimary, BeneficiaryContingent, t)
	}
	return nil
}

// ValidatePercentage requires 0 <= p <= 100 with at most two decimal places.
func ValidatePercentage(p decimal.Decimal, field string) error {
	if p.IsNegative() || p.GreaterThan(FullAllocation) {
		return fmt.Errorf("%w: %s must be between 0 and 100, got %s", apperrors.ErrValidation, field, p.String())
	}
	if !p.Equal(p.Truncate(percentageScale)) {
		return fmt.Errorf("%w: %s allows at most %d decimal places, got %s", apperrors.ErrValidation, field, percentageScale, p.String())
	}
	return nil
}

// ExceedsCap reports whether adding addition to current would push the total past 100.
func ExceedsCap(current, addition decimal.Decimal) bool {
	return current.Add(addition).GreaterThan(FullAllocation)
}

// SumPercentages totals the percentage of benefit of the given beneficiaries.
func SumPercentages(bs []Beneficiary) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bs {
		total = total.Add(b.PercentageOfBenefit)
	}
	return total
}

// Validate checks the fields of a beneficiary before it is written.
func (b *Beneficiary) Validate() error {
	if err := ValidateBeneficiaryType(b.BeneficiaryType); err != nil {
		return err
	}
	if err := ValidatePercentage(b.PercentageOfBenefit, "percentageOfBenefit"); err != nil {
		return err
	}
	if blank(&b.FirstName) || blank(&b.LastName) {
		return fmt.Errorf("%w: firstName and lastName are required", apperrors.ErrValidation)
	}
	if blank(&b.Relationship) {
		return fmt.Errorf("%w: relationship is required", apperrors.ErrValidation)
	}
	return nil
}

// BeneficiaryAllocation is the read-only grouped view of a profile's beneficiaries.
// Totals are reported as-is; an allocation under 100 is surfaced, not corrected.
type BeneficiaryAllocation struct {
	Primary         []Beneficiary   `json:"primary"`
	PrimaryTotal    decimal.Decimal `json:"primaryTotal"`
	Contingent      []Beneficiary   `json:"contingent"`
	ContingentTotal decimal.Decimal `json:"contingentTotal"`
}

// IsComplete reports whether the primary set is fully allocated.
func (a BeneficiaryAllocation) IsComplete() bool {
	return a.PrimaryTotal.Equal(FullAllocation)
}

// GroupBeneficiaries partitions bs by type, each ordered by percentage descending.
func GroupBeneficiaries(bs []Beneficiary) BeneficiaryAllocation {
	alloc := BeneficiaryAllocation{
		Primary:    []Beneficiary{},
		Contingent: []Beneficiary{},
	}
	for _, b := range bs {
		switch b.BeneficiaryType {
		case BeneficiaryPrimary:
			alloc.Primary = append(alloc.Primary, b)
		case BeneficiaryContingent:
			alloc.Contingent = append(alloc.Contingent, b)
		}
	}
	byPercentDesc := func(s []Beneficiary) {
		sort.SliceStable(s, func(i, j int) bool {
			return s[i].PercentageOfBenefit.GreaterThan(s[j].PercentageOfBenefit)
		})
	}
	byPercentDesc(alloc.Primary)
	byPercentDesc(alloc.Contingent)
	alloc.PrimaryTotal = SumPercentages(alloc.Primary)
	alloc.ContingentTotal = SumPercentages(alloc.Contingent)
	return alloc
}

// ValidateReplacementBatch checks a bulk replacement and returns the types it covers.
// Every type present must total exactly 100.
func ValidateReplacementBatch(items []Beneficiary) ([]BeneficiaryType, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one beneficiary is required", apperrors.ErrValidation)
	}
	totals := make(map[BeneficiaryType]decimal.Decimal, 2)
	var types []BeneficiaryType
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, fmt.Errorf("beneficiary %d: %w", i+1, err)
		}
		t := items[i].BeneficiaryType
		if _, seen := totals[t]; !seen {
			types = append(types, t)
			totals[t] = decimal.Zero
		}
		totals[t] = totals[t].Add(items[i].PercentageOfBenefit)
	}
	for _, t := range types {
		if !totals[t].Equal(FullAllocation) {
			return nil, fmt.Errorf("%w: %s beneficiaries must total exactly 100%%, got %s%%", apperrors.ErrBusinessRule, t, totals[t].String())
		}
	}
	return types, nil
}
