package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/SscSPs/investor_onboarding_app/internal/models"
)

// ToModelInvestorProfile converts a domain InvestorProfile to a model InvestorProfile
func ToModelInvestorProfile(d domain.InvestorProfile) models.InvestorProfile {
	var accType *int
	if d.AccreditationType != nil {
		v := int(*d.AccreditationType)
		accType = &v
	}
	return models.InvestorProfile{
		ProfileID:            d.ProfileID,
		UserID:               d.UserID,
		InvestorType:         string(d.InvestorType),
		IsAccredited:         d.IsAccredited,
		AccreditationType:    accType,
		CompletionPercentage: d.CompletionPercentage,
		IsActive:             d.IsActive,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvestorProfile converts a model InvestorProfile to a domain InvestorProfile.
// The detail is attached separately.
func ToDomainInvestorProfile(m models.InvestorProfile) domain.InvestorProfile {
	var accType *domain.AccreditationType
	if m.AccreditationType != nil {
		v := domain.AccreditationType(*m.AccreditationType)
		accType = &v
	}
	return domain.InvestorProfile{
		ProfileID:            m.ProfileID,
		UserID:               m.UserID,
		InvestorType:         domain.InvestorType(m.InvestorType),
		IsAccredited:         m.IsAccredited,
		AccreditationType:    accType,
		CompletionPercentage: m.CompletionPercentage,
		IsActive:             m.IsActive,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvestorTypeDetail encodes the detail variant for JSONB storage.
func ToModelInvestorTypeDetail(d domain.TypeSpecificDetail) (models.InvestorTypeDetail, error) {
	raw, err := json.Marshal(d.Attributes)
	if err != nil {
		return models.InvestorTypeDetail{}, fmt.Errorf("failed to encode %s detail: %w", d.InvestorType, err)
	}
	return models.InvestorTypeDetail{
		DetailID:     d.DetailID,
		ProfileID:    d.ProfileID,
		InvestorType: string(d.InvestorType),
		Attributes:   raw,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainTypeSpecificDetail decodes a stored detail row into its variant.
func ToDomainTypeSpecificDetail(m models.InvestorTypeDetail) (domain.TypeSpecificDetail, error) {
	t := domain.InvestorType(m.InvestorType)
	attrs, err := domain.DecodeDetailAttributes(t, m.Attributes)
	if err != nil {
		return domain.TypeSpecificDetail{}, fmt.Errorf("stored detail %s is unreadable: %w", m.DetailID, err)
	}
	return domain.TypeSpecificDetail{
		DetailID:     m.DetailID,
		ProfileID:    m.ProfileID,
		InvestorType: t,
		Attributes:   attrs,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}, nil
}
