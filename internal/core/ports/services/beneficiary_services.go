package services

import (
	"context"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
)

// BeneficiaryReaderSvc defines read operations for beneficiaries
type BeneficiaryReaderSvc interface {
	// GetGrouped returns the profile's beneficiaries partitioned by type with their totals.
	GetGrouped(ctx context.Context, profileID string) (*domain.BeneficiaryAllocation, error)
}

// BeneficiaryWriterSvc defines the allocation-preserving write operations
type BeneficiaryWriterSvc interface {
	// AddSingle adds one beneficiary as long as its type stays at or below 100%.
	AddSingle(ctx context.Context, profileID string, req dto.BeneficiaryRequest, userID string) (*domain.Beneficiary, error)

	// ReplaceByType replaces all beneficiaries of every type in the batch. Each type must total exactly 100%.
	ReplaceByType(ctx context.Context, profileID string, req dto.ReplaceBeneficiariesRequest, userID string) ([]domain.Beneficiary, error)

	// Update edits a beneficiary in place as long as its type stays at or below 100%.
	Update(ctx context.Context, beneficiaryID string, req dto.UpdateBeneficiaryRequest, userID string) (*domain.Beneficiary, error)

	// Delete removes a beneficiary. Remaining percentages are not rebalanced.
	Delete(ctx context.Context, beneficiaryID string, userID string) error
}

// BeneficiarySvcFacade combines all beneficiary service interfaces
type BeneficiarySvcFacade interface {
	BeneficiaryReaderSvc
	BeneficiaryWriterSvc
}
