package services

import (
	"context"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
)

// InvestorTypeReaderSvc defines read operations for investor profiles
type InvestorTypeReaderSvc interface {
	// GetProfile retrieves a profile with its type-specific detail.
	GetProfile(ctx context.Context, profileID string) (*domain.InvestorProfile, error)

	// GetProfileByUser retrieves the profile owned by userID.
	GetProfileByUser(ctx context.Context, userID string) (*domain.InvestorProfile, error)
}

// InvestorTypeWriterSvc defines write operations for investor profiles
type InvestorTypeWriterSvc interface {
	// SelectType creates the user's one and only profile with the chosen investor type.
	SelectType(ctx context.Context, req dto.SelectInvestorTypeRequest, userID string) (*domain.InvestorProfile, error)

	// UpdateAccreditationFlag changes the profile-level accreditation claim.
	UpdateAccreditationFlag(ctx context.Context, profileID string, req dto.UpdateAccreditationStatusRequest, userID string) (*domain.InvestorProfile, error)
}

// InvestorTypeSvcFacade combines all profile-related service interfaces
type InvestorTypeSvcFacade interface {
	InvestorTypeReaderSvc
	InvestorTypeWriterSvc
}
