package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/SscSPs/investor_onboarding_app/internal/models"
)

// ToModelGeneralInfo encodes the general info variant for JSONB storage. Parties are stored separately.
func ToModelGeneralInfo(d domain.GeneralInfo) (models.GeneralInfo, error) {
	raw, err := json.Marshal(d.Attributes)
	if err != nil {
		return models.GeneralInfo{}, fmt.Errorf("failed to encode %s general info: %w", d.InvestorType, err)
	}
	return models.GeneralInfo{
		GeneralInfoID: d.GeneralInfoID,
		DetailID:      d.DetailID,
		ProfileID:     d.ProfileID,
		InvestorType:  string(d.InvestorType),
		Attributes:    raw,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainGeneralInfo decodes a stored general info row. Parties are attached by the caller.
func ToDomainGeneralInfo(m models.GeneralInfo) (domain.GeneralInfo, error) {
	t := domain.InvestorType(m.InvestorType)
	attrs, err := domain.DecodeGeneralInfoAttributes(t, m.Attributes)
	if err != nil {
		return domain.GeneralInfo{}, fmt.Errorf("stored general info %s is unreadable: %w", m.GeneralInfoID, err)
	}
	return domain.GeneralInfo{
		GeneralInfoID: m.GeneralInfoID,
		DetailID:      m.DetailID,
		ProfileID:     m.ProfileID,
		InvestorType:  t,
		Attributes:    attrs,
		Parties:       []domain.GeneralInfoParty{},
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}, nil
}

func ToModelGeneralInfoParty(d domain.GeneralInfoParty) (models.GeneralInfoParty, error) {
	raw, err := json.Marshal(d.Attributes)
	if err != nil {
		return models.GeneralInfoParty{}, fmt.Errorf("failed to encode %s: %w", d.Kind, err)
	}
	return models.GeneralInfoParty{
		PartyID:       d.PartyID,
		GeneralInfoID: d.GeneralInfoID,
		Kind:          string(d.Kind),
		OrderIndex:    d.OrderIndex,
		Attributes:    raw,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}, nil
}

func ToDomainGeneralInfoParty(m models.GeneralInfoParty) (domain.GeneralInfoParty, error) {
	kind := domain.PartyKind(m.Kind)
	attrs, err := domain.RestorePartyAttributes(kind, m.Attributes)
	if err != nil {
		return domain.GeneralInfoParty{}, fmt.Errorf("stored party %s is unreadable: %w", m.PartyID, err)
	}
	return domain.GeneralInfoParty{
		PartyID:       m.PartyID,
		GeneralInfoID: m.GeneralInfoID,
		Kind:          kind,
		OrderIndex:    m.OrderIndex,
		Attributes:    attrs,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}, nil
}
