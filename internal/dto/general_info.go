package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
)

// SaveGeneralInfoRequest carries the general info payload for the profile's investor type.
type SaveGeneralInfoRequest struct {
	Attributes json.RawMessage `json:"attributes" binding:"required" swaggertype:"object"`
}

// AddPartyRequest adds an account holder, grantor or equity owner, depending on the parent's type.
type AddPartyRequest struct {
	OrderIndex int             `json:"orderIndex"`
	Attributes json.RawMessage `json:"attributes" binding:"required" swaggertype:"object"`
}

type PartyResponse struct {
	PartyID       string           `json:"partyID"`
	GeneralInfoID string           `json:"generalInfoID"`
	Kind          domain.PartyKind `json:"kind"`
	OrderIndex    int              `json:"orderIndex"`
	Attributes    any              `json:"attributes" swaggertype:"object"`
	CreatedAt     time.Time        `json:"createdAt"`
}

type GeneralInfoResponse struct {
	GeneralInfoID string              `json:"generalInfoID"`
	DetailID      string              `json:"detailID"`
	ProfileID     string              `json:"profileID"`
	InvestorType  domain.InvestorType `json:"investorType"`
	Attributes    any                 `json:"attributes" swaggertype:"object"`
	Parties       []PartyResponse     `json:"parties"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy string              `json:"lastUpdatedBy"`
}

func ToPartyResponse(p *domain.GeneralInfoParty) PartyResponse {
	return PartyResponse{
		PartyID:       p.PartyID,
		GeneralInfoID: p.GeneralInfoID,
		Kind:          p.Kind,
		OrderIndex:    p.OrderIndex,
		Attributes:    p.Attributes,
		CreatedAt:     p.CreatedAt,
	}
}

// ToGeneralInfoResponse converts a domain.GeneralInfo, parties included.
func ToGeneralInfoResponse(g *domain.GeneralInfo) GeneralInfoResponse {
	parties := make([]PartyResponse, len(g.Parties))
	for i := range g.Parties {
		parties[i] = ToPartyResponse(&g.Parties[i])
	}
	return GeneralInfoResponse{
		GeneralInfoID: g.GeneralInfoID,
		DetailID:      g.DetailID,
		ProfileID:     g.ProfileID,
		InvestorType:  g.InvestorType,
		Attributes:    g.Attributes,
		Parties:       parties,
		CreatedAt:     g.CreatedAt,
		CreatedBy:     g.CreatedBy,
		LastUpdatedAt: g.LastUpdatedAt,
		LastUpdatedBy: g.LastUpdatedBy,
	}
}
