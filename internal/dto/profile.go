package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
)

// SelectInvestorTypeRequest creates the caller's investor profile.
// Details carries the type-specific payload, e.g. {"iraType": 2} for an IRA.
type SelectInvestorTypeRequest struct {
	InvestorType      domain.InvestorType       `json:"investorType" binding:"required,oneof=INDIVIDUAL JOINT IRA TRUST ENTITY"`
	IsAccredited      bool                      `json:"isAccredited"`
	AccreditationType *domain.AccreditationType `json:"accreditationType"`
	Details           json.RawMessage           `json:"details" swaggertype:"object"`
}

// UpdateAccreditationStatusRequest changes the profile-level accreditation claim.
type UpdateAccreditationStatusRequest struct {
	IsAccredited      *bool                     `json:"isAccredited" binding:"required"`
	AccreditationType *domain.AccreditationType `json:"accreditationType"`
}

// TypeSpecificDetailResponse mirrors domain.TypeSpecificDetail.
type TypeSpecificDetailResponse struct {
	DetailID     string              `json:"detailID"`
	InvestorType domain.InvestorType `json:"investorType"`
	Attributes   any                 `json:"attributes" swaggertype:"object"`
}

// ProfileResponse defines the data returned for an investor profile.
type ProfileResponse struct {
	ProfileID            string                      `json:"profileID"`
	UserID               string                      `json:"userID"`
	InvestorType         domain.InvestorType         `json:"investorType"`
	IsAccredited         bool                        `json:"isAccredited"`
	AccreditationType    *domain.AccreditationType   `json:"accreditationType,omitempty"`
	CompletionPercentage int                         `json:"completionPercentage"`
	IsActive             bool                        `json:"isActive"`
	Detail               *TypeSpecificDetailResponse `json:"detail,omitempty"`
	CreatedAt            time.Time                   `json:"createdAt"`
	CreatedBy            string                      `json:"createdBy"`
	LastUpdatedAt        time.Time                   `json:"lastUpdatedAt"`
	LastUpdatedBy        string                      `json:"lastUpdatedBy"`
}

// ToProfileResponse converts a domain.InvestorProfile to ProfileResponse DTO
func ToProfileResponse(p *domain.InvestorProfile) ProfileResponse {
	res := ProfileResponse{
		ProfileID:            p.ProfileID,
		UserID:               p.UserID,
		InvestorType:         p.InvestorType,
		IsAccredited:         p.IsAccredited,
		AccreditationType:    p.AccreditationType,
		CompletionPercentage: p.CompletionPercentage,
		IsActive:             p.IsActive,
		CreatedAt:            p.CreatedAt,
		CreatedBy:            p.CreatedBy,
		LastUpdatedAt:        p.LastUpdatedAt,
		LastUpdatedBy:        p.LastUpdatedBy,
	}
	if p.Detail != nil {
		res.Detail = &TypeSpecificDetailResponse{
			DetailID:     p.Detail.DetailID,
			InvestorType: p.Detail.InvestorType,
			Attributes:   p.Detail.Attributes,
		}
	}
	return res
}
