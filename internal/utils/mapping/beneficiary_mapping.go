package mapping

import (
	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/SscSPs/investor_onboarding_app/internal/models"
)

// ToModelBeneficiary converts a domain Beneficiary to a model Beneficiary
func ToModelBeneficiary(d domain.Beneficiary) models.Beneficiary {
	return models.Beneficiary{
		BeneficiaryID:       d.BeneficiaryID,
		ProfileID:           d.ProfileID,
		BeneficiaryType:     string(d.BeneficiaryType),
		FirstName:           d.FirstName,
		LastName:            d.LastName,
		Relationship:        d.Relationship,
		DateOfBirth:         d.DateOfBirth,
		Email:               d.Email,
		Phone:               d.Phone,
		PercentageOfBenefit: d.PercentageOfBenefit,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBeneficiary converts a model Beneficiary to a domain Beneficiary
func ToDomainBeneficiary(m models.Beneficiary) domain.Beneficiary {
	return domain.Beneficiary{
		BeneficiaryID:       m.BeneficiaryID,
		ProfileID:           m.ProfileID,
		BeneficiaryType:     domain.BeneficiaryType(m.BeneficiaryType),
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		Relationship:        m.Relationship,
		DateOfBirth:         m.DateOfBirth,
		Email:               m.Email,
		Phone:               m.Phone,
		PercentageOfBenefit: m.PercentageOfBenefit,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBeneficiarySlice converts a slice of model Beneficiaries to domain Beneficiaries
func ToDomainBeneficiarySlice(ms []models.Beneficiary) []domain.Beneficiary {
	ds := make([]domain.Beneficiary, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBeneficiary(m)
	}
	return ds
}
