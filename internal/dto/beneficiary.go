package dto

import (
	"time"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BeneficiaryRequest defines one beneficiary, used singly and inside a replacement batch.
type BeneficiaryRequest struct {
	BeneficiaryType     domain.BeneficiaryType `json:"beneficiaryType" binding:"required,oneof=PRIMARY CONTINGENT"`
	FirstName           string                 `json:"firstName" binding:"required"`
	LastName            string                 `json:"lastName" binding:"required"`
	Relationship        string                 `json:"relationship" binding:"required"`
	DateOfBirth         *string                `json:"dateOfBirth"`
	Email               *string                `json:"email" binding:"omitempty,email"`
	Phone               *string                `json:"phone"`
	PercentageOfBenefit decimal.Decimal        `json:"percentageOfBenefit" swaggertype:"string" example:"50.00"`
}

// UpdateBeneficiaryRequest edits a beneficiary in place. The beneficiary type cannot change.
type UpdateBeneficiaryRequest struct {
	FirstName           string          `json:"firstName" binding:"required"`
	LastName            string          `json:"lastName" binding:"required"`
	Relationship        string          `json:"relationship" binding:"required"`
	DateOfBirth         *string         `json:"dateOfBirth"`
	Email               *string         `json:"email" binding:"omitempty,email"`
	Phone               *string         `json:"phone"`
	PercentageOfBenefit decimal.Decimal `json:"percentageOfBenefit" swaggertype:"string" example:"40.00"`
}

// ReplaceBeneficiariesRequest replaces every beneficiary of each type present in the batch.
type ReplaceBeneficiariesRequest struct {
	Beneficiaries []BeneficiaryRequest `json:"beneficiaries" binding:"required,min=1,dive"`
}

type BeneficiaryResponse struct {
	BeneficiaryID       string                 `json:"beneficiaryID"`
	ProfileID           string                 `json:"profileID"`
	BeneficiaryType     domain.BeneficiaryType `json:"beneficiaryType"`
	FirstName           string                 `json:"firstName"`
	LastName            string                 `json:"lastName"`
	Relationship        string                 `json:"relationship"`
	DateOfBirth         *string                `json:"dateOfBirth,omitempty"`
	Email               *string                `json:"email,omitempty"`
	Phone               *string                `json:"phone,omitempty"`
	PercentageOfBenefit decimal.Decimal        `json:"percentageOfBenefit" swaggertype:"string"`
	CreatedAt           time.Time              `json:"createdAt"`
	LastUpdatedAt       time.Time              `json:"lastUpdatedAt"`
}

// BeneficiaryAllocationResponse is the grouped view. IsComplete is false until primaries total 100.
type BeneficiaryAllocationResponse struct {
	Primary         []BeneficiaryResponse `json:"primary"`
	PrimaryTotal    decimal.Decimal       `json:"primaryTotal" swaggertype:"string"`
	Contingent      []BeneficiaryResponse `json:"contingent"`
	ContingentTotal decimal.Decimal       `json:"contingentTotal" swaggertype:"string"`
	IsComplete      bool                  `json:"isComplete"`
}

func ToBeneficiaryResponse(b *domain.Beneficiary) BeneficiaryResponse {
	return BeneficiaryResponse{
		BeneficiaryID:       b.BeneficiaryID,
		ProfileID:           b.ProfileID,
		BeneficiaryType:     b.BeneficiaryType,
		FirstName:           b.FirstName,
		LastName:            b.LastName,
		Relationship:        b.Relationship,
		DateOfBirth:         b.DateOfBirth,
		Email:               b.Email,
		Phone:               b.Phone,
		PercentageOfBenefit: b.PercentageOfBenefit,
		CreatedAt:           b.CreatedAt,
		LastUpdatedAt:       b.LastUpdatedAt,
	}
}

func ToListBeneficiaryResponse(bs []domain.Beneficiary) []BeneficiaryResponse {
	res := make([]BeneficiaryResponse, len(bs))
	for i := range bs {
		res[i] = ToBeneficiaryResponse(&bs[i])
	}
	return res
}

func ToBeneficiaryAllocationResponse(a domain.BeneficiaryAllocation) BeneficiaryAllocationResponse {
	return BeneficiaryAllocationResponse{
		Primary:         ToListBeneficiaryResponse(a.Primary),
		PrimaryTotal:    a.PrimaryTotal,
		Contingent:      ToListBeneficiaryResponse(a.Contingent),
		ContingentTotal: a.ContingentTotal,
		IsComplete:      a.IsComplete(),
	}
}
