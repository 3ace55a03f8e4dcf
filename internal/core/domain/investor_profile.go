package domain

import (
	"fmt"

	"github.com/SscSPs/investor_onboarding_app/internal/apperrors"
)

// InvestorType is the declared shape of an investor profile. It is fixed at creation.
type InvestorType string

const (
	InvestorIndividual InvestorType = "INDIVIDUAL"
	InvestorJoint      InvestorType = "JOINT"
	InvestorIRA        InvestorType = "IRA"
	InvestorTrust      InvestorType = "TRUST"
	InvestorEntity     InvestorType = "ENTITY"
)

// IsValid reports whether t is one of the five supported investor types.
func (t InvestorType) IsValid() bool {
	_, err := variantFor(t)
	return err == nil
}

// AccreditationType identifies the basis on which an investor claims accredited status.
type AccreditationType int

const (
	AccreditationIncome AccreditationType = iota + 1
	AccreditationNetWorth
	AccreditationSeries7
	AccreditationSeries65
	AccreditationSeries82
	AccreditationEntityAssets
)

var accreditationTypeNames = map[AccreditationType]string{
	AccreditationIncome:       "INCOME",
	AccreditationNetWorth:     "NET_WORTH",
	AccreditationSeries7:      "SERIES_7",
	AccreditationSeries65:     "SERIES_65",
	AccreditationSeries82:     "SERIES_82",
	AccreditationEntityAssets: "ENTITY_ASSETS",
}

func (t AccreditationType) IsValid() bool {
	_, ok := accreditationTypeNames[t]
	return ok
}

// IsLicenseBased reports whether the claim rests on a securities license,
// which makes the license number and state mandatory.
func (t AccreditationType) IsLicenseBased() bool {
	return t == AccreditationSeries7 || t == AccreditationSeries65 || t == AccreditationSeries82
}

func (t AccreditationType) String() string {
	if name, ok := accreditationTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AccreditationType(%d)", int(t))
}

// Onboarding completion milestones. Completion only ever moves up.
const (
	CompletionTypeSelected   = 10
	CompletionGeneralInfo    = 40
	CompletionBeneficiaries  = 70
	CompletionAccreditation  = 90
	CompletionPercentageFull = 100
)

// InvestorProfile is the root onboarding record. One per user.
type InvestorProfile struct {
	ProfileID            string              `json:"profileID"`
	UserID               string              `json:"userID"`
	InvestorType         InvestorType        `json:"investorType"`
	IsAccredited         bool                `json:"isAccredited"`
	AccreditationType    *AccreditationType  `json:"accreditationType,omitempty"`
	CompletionPercentage int                 `json:"completionPercentage"`
	IsActive             bool                `json:"isActive"`
	Detail               *TypeSpecificDetail `json:"detail,omitempty"`
	AuditFields
}

// ValidateAccreditationClaim enforces that an accredited claim names its basis.
func ValidateAccreditationClaim(isAccredited bool, accreditationType *AccreditationType) error {
	if !isAccredited {
		return nil
	}
	if accreditationType == nil {
		return fmt.Errorf("%w: accreditationType is required when isAccredited is true", apperrors.ErrValidation)
	}
	if !accreditationType.IsValid() {
		return fmt.Errorf("%w: accreditationType %d is not a defined type", apperrors.ErrValidation, int(*accreditationType))
	}
	return nil
}

// ApplyAccreditationClaim sets the profile-level accreditation flag. Clearing the flag clears the type.
func (p *InvestorProfile) ApplyAccreditationClaim(isAccredited bool, accreditationType *AccreditationType) error {
	if err := ValidateAccreditationClaim(isAccredited, accreditationType); err != nil {
		return err
	}
	p.IsAccredited = isAccredited
	if isAccredited {
		t := *accreditationType
		p.AccreditationType = &t
	} else {
		p.AccreditationType = nil
	}
	return nil
}
