package services

import (
	"context"
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

type generalInfoService struct {
	BaseService
	profileRepo     portsrepo.ProfileRepositoryFacade
	generalInfoRepo portsrepo.GeneralInfoRepositoryWithTx
}

// NewGeneralInfoService creates the service that resolves general info against the profile's investor type.
func NewGeneralInfoService(profileRepo portsrepo.ProfileRepositoryFacade, generalInfoRepo portsrepo.GeneralInfoRepositoryWithTx) portssvc.GeneralInfoSvcFacade {
	return &generalInfoService{
		profileRepo:     profileRepo,
		generalInfoRepo: generalInfoRepo,
	}
}

var _ portssvc.GeneralInfoSvcFacade = (*generalInfoService)(nil)

// SaveGeneralInfo upserts the general info of the variant matching the profile's investor type.
func (s *generalInfoService) SaveGeneralInfo(ctx context.Context, profileID string, req dto.SaveGeneralInfoRequest, userID string) (*domain.GeneralInfo, error) {
	// Profiles are created together with their detail, so a found profile always carries one.
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		s.LogFailure(ctx, err, "Cannot save general info", slog.String("profile_id", profileID))
		return nil, err
	}

	attrs, err := domain.DecodeGeneralInfoAttributes(profile.InvestorType, req.Attributes)
	if err != nil {
		return nil, err
	}
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	ts := now()
	saved, err := s.generalInfoRepo.UpsertGeneralInfo(ctx, domain.GeneralInfo{
		GeneralInfoID: uuid.NewString(),
		DetailID:      profile.Detail.DetailID,
		ProfileID:     profile.ProfileID,
		InvestorType:  profile.InvestorType,
		Attributes:    attrs,
		AuditFields:   domain.NewAuditFields(userID, ts),
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save general info", slog.String("profile_id", profileID))
		return nil, err
	}

	// Completion is advisory; the general info is already saved.
	if err := s.profileRepo.RaiseCompletion(ctx, profileID, domain.CompletionGeneralInfo, userID, ts); err != nil {
		s.LogError(ctx, err, "Failed to raise profile completion", slog.String("profile_id", profileID))
	}
	return saved, nil
}

// GetByProfileID dispatches on the profile's investor type and loads the matching general info with its parties.
func (s *generalInfoService) GetByProfileID(ctx context.Context, profileID string) (*domain.GeneralInfo, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		s.LogFailure(ctx, err, "Cannot load general info", slog.String("profile_id", profileID))
		return nil, err
	}
	info, err := s.generalInfoRepo.FindGeneralInfoByDetailID(ctx, profile.Detail.DetailID)
	if err != nil {
		s.LogFailure(ctx, err, "General info not available", slog.String("profile_id", profileID))
		return nil, err
	}
	return info, nil
}

// AddChildRecord adds a party of the kind the parent general info accepts. The parent row stays
// locked while equity ownership is totalled so concurrent owners cannot exceed 100%.
func (s *generalInfoService) AddChildRecord(ctx context.Context, generalInfoID string, req dto.AddPartyRequest, userID string) (*domain.GeneralInfoParty, error) {
	var party domain.GeneralInfoParty

	err := s.RunInTx(ctx, s.generalInfoRepo, func(tx pgx.Tx) error {
		parent, err := s.generalInfoRepo.FindGeneralInfoByIDForUpdate(ctx, tx, generalInfoID)
		if err != nil {
			return err
		}

		attrs, err := domain.DecodePartyAttributes(parent.InvestorType, req.OrderIndex, req.Attributes)
		if err != nil {
			return err
		}
		if err := attrs.Validate(); err != nil {
			return err
		}
		if owner, ok := attrs.(*domain.EntityEquityOwner); ok {
			current := domain.TotalOwnership(parent.Parties)
			if domain.ExceedsCap(current, owner.OwnershipPercentage) {
				return fmt.Errorf("%w: equity owners already hold %s%%; adding %s%% would exceed 100%%",
					apperrors.ErrBusinessRule, current.String(), owner.OwnershipPercentage.String())
			}
		}

		party = domain.GeneralInfoParty{
			PartyID:       uuid.NewString(),
			GeneralInfoID: parent.GeneralInfoID,
			Kind:          attrs.PartyKind(),
			OrderIndex:    req.OrderIndex,
			Attributes:    attrs,
			AuditFields:   domain.NewAuditFields(userID, now()),
		}
		return s.generalInfoRepo.SavePartyInTx(ctx, tx, party)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to add general info party", slog.String("general_info_id", generalInfoID))
		return nil, err
	}

	s.LogInfo(ctx, "General info party added",
		slog.String("general_info_id", generalInfoID),
		slog.String("kind", string(party.Kind)))
	return &party, nil
}
