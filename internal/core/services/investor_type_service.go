package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/investor_onboarding_app/internal/apperrors"
	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	portsrepo "github.com/SscSPs/investor_onboarding_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investor_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type investorTypeService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryWithTx
}

// NewInvestorTypeService creates the service that owns profile creation and the investor-type choice.
func NewInvestorTypeService(profileRepo portsrepo.ProfileRepositoryWithTx) portssvc.InvestorTypeSvcFacade {
	return &investorTypeService{profileRepo: profileRepo}
}

var _ portssvc.InvestorTypeSvcFacade = (*investorTypeService)(nil)

// SelectType validates the type-specific payload and creates the profile with its detail in one transaction.
func (s *investorTypeService) SelectType(ctx context.Context, req dto.SelectInvestorTypeRequest, userID string) (*domain.InvestorProfile, error) {
	// An existing profile wins over any payload problem.
	existing, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: user already has a %s investor profile; the investor type cannot change",
			apperrors.ErrBusinessRule, existing.InvestorType)
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check for existing investor profile", slog.String("user_id", userID))
		return nil, err
	}

	attrs, err := domain.DecodeDetailAttributes(req.InvestorType, req.Details)
	if err != nil {
		return nil, err
	}
	if err := attrs.Validate(); err != nil {
		return nil, err
	}
	if err := domain.ValidateAccreditationClaim(req.IsAccredited, req.AccreditationType); err != nil {
		return nil, err
	}

	ts := now()
	profile := domain.InvestorProfile{
		ProfileID:            uuid.NewString(),
		UserID:               userID,
		InvestorType:         req.InvestorType,
		CompletionPercentage: domain.CompletionTypeSelected,
		IsActive:             true,
		AuditFields:          domain.NewAuditFields(userID, ts),
	}
	if err := profile.ApplyAccreditationClaim(req.IsAccredited, req.AccreditationType); err != nil {
		return nil, err
	}
	detail := domain.TypeSpecificDetail{
		DetailID:     uuid.NewString(),
		ProfileID:    profile.ProfileID,
		InvestorType: req.InvestorType,
		Attributes:   attrs,
		AuditFields:  domain.NewAuditFields(userID, ts),
	}

	err = s.RunInTx(ctx, s.profileRepo, func(tx pgx.Tx) error {
		return s.profileRepo.SaveProfileWithDetailInTx(ctx, tx, profile, detail)
	})
	if err != nil {
		// A concurrent creator can win the unique user_id index after our check.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: user already has an investor profile", apperrors.ErrBusinessRule)
		}
		s.LogFailure(ctx, err, "Failed to create investor profile",
			slog.String("user_id", userID), slog.String("investor_type", string(req.InvestorType)))
		return nil, err
	}

	profile.Detail = &detail
	s.LogInfo(ctx, "Investor profile created",
		slog.String("profile_id", profile.ProfileID),
		slog.String("investor_type", string(profile.InvestorType)))
	return &profile, nil
}

func (s *investorTypeService) GetProfile(ctx context.Context, profileID string) (*domain.InvestorProfile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to get investor profile", slog.String("profile_id", profileID))
		return nil, err
	}
	return profile, nil
}

func (s *investorTypeService) GetProfileByUser(ctx context.Context, userID string) (*domain.InvestorProfile, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to get investor profile for user", slog.String("user_id", userID))
		return nil, err
	}
	return profile, nil
}

// UpdateAccreditationFlag applies the same "type required iff accredited" rule used at creation.
func (s *investorTypeService) UpdateAccreditationFlag(ctx context.Context, profileID string, req dto.UpdateAccreditationStatusRequest, userID string) (*domain.InvestorProfile, error) {
	if req.IsAccredited == nil {
		return nil, fmt.Errorf("%w: isAccredited is required", apperrors.ErrValidation)
	}

	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to load profile for accreditation update", slog.String("profile_id", profileID))
		return nil, err
	}
	if err := profile.ApplyAccreditationClaim(*req.IsAccredited, req.AccreditationType); err != nil {
		return nil, err
	}
	profile.Touch(userID, now())

	if err := s.profileRepo.UpdateAccreditationClaim(ctx, *profile); err != nil {
		s.LogFailure(ctx, err, "Failed to update accreditation claim", slog.String("profile_id", profileID))
		return nil, err
	}
	return profile, nil
}
