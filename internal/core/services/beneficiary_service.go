package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/investor_onboarding_app/internal/apperrors"
	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	portsrepo "github.com/SscSPs/investor_onboarding_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investor_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// beneficiaryService keeps each (profile, beneficiary type) allocation at or below 100%.
// Every write first locks the owning profile row, which serialises concurrent writers to the
// same allocation, including the case where the profile has no beneficiaries yet.
type beneficiaryService struct {
	BaseService
	profileRepo     portsrepo.ProfileRepositoryFacade
	beneficiaryRepo portsrepo.BeneficiaryRepositoryWithTx
}

func NewBeneficiaryService(profileRepo portsrepo.ProfileRepositoryFacade, beneficiaryRepo portsrepo.BeneficiaryRepositoryWithTx) portssvc.BeneficiarySvcFacade {
	return &beneficiaryService{
		profileRepo:     profileRepo,
		beneficiaryRepo: beneficiaryRepo,
	}
}

var _ portssvc.BeneficiarySvcFacade = (*beneficiaryService)(nil)

func newBeneficiary(profileID string, req dto.BeneficiaryRequest, userID string, ts time.Time) domain.Beneficiary {
	return domain.Beneficiary{
		BeneficiaryID:       uuid.NewString(),
		ProfileID:           profileID,
		BeneficiaryType:     req.BeneficiaryType,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Relationship:        req.Relationship,
		DateOfBirth:         req.DateOfBirth,
		Email:               req.Email,
		Phone:               req.Phone,
		PercentageOfBenefit: req.PercentageOfBenefit,
		AuditFields:         domain.NewAuditFields(userID, ts),
	}
}

func applyBeneficiaryUpdate(b *domain.Beneficiary, req dto.UpdateBeneficiaryRequest, userID string, ts time.Time) {
	b.FirstName = req.FirstName
	b.LastName = req.LastName
	b.Relationship = req.Relationship
	b.DateOfBirth = req.DateOfBirth
	b.Email = req.Email
	b.Phone = req.Phone
	b.PercentageOfBenefit = req.PercentageOfBenefit
	b.Touch(userID, ts)
}

// raiseIfAllocated bumps profile completion once the primary allocation reaches exactly 100%.
func (s *beneficiaryService) raiseIfAllocated(ctx context.Context, tx pgx.Tx, profileID string, primaryTotal decimal.Decimal, userID string, ts time.Time) error {
	if !primaryTotal.Equal(domain.FullAllocation) {
		return nil
	}
	return s.profileRepo.RaiseCompletionInTx(ctx, tx, profileID, domain.CompletionBeneficiaries, userID, ts)
}

// AddSingle adds one beneficiary. The new total for its type may not exceed 100%.
func (s *beneficiaryService) AddSingle(ctx context.Context, profileID string, req dto.BeneficiaryRequest, userID string) (*domain.Beneficiary, error) {
	ts := now()
	b := newBeneficiary(profileID, req, userID, ts)

	err := s.RunInTx(ctx, s.beneficiaryRepo, func(tx pgx.Tx) error {
		if _, err := s.profileRepo.FindProfileByIDForUpdate(ctx, tx, profileID); err != nil {
			return err
		}
		if err := b.Validate(); err != nil {
			return err
		}

		current, err := s.beneficiaryRepo.SumPercentagesInTx(ctx, tx, profileID, b.BeneficiaryType, "")
		if err != nil {
			return err
		}
		if domain.ExceedsCap(current, b.PercentageOfBenefit) {
			return fmt.Errorf("%w: %s beneficiaries already total %s%%; adding %s%% would exceed 100%%",
				apperrors.ErrBusinessRule, b.BeneficiaryType, current.String(), b.PercentageOfBenefit.String())
		}
		if err := s.beneficiaryRepo.SaveBeneficiariesInTx(ctx, tx, []domain.Beneficiary{b}); err != nil {
			return err
		}
		if b.BeneficiaryType == domain.BeneficiaryPrimary {
			return s.raiseIfAllocated(ctx, tx, profileID, current.Add(b.PercentageOfBenefit), userID, ts)
		}
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to add beneficiary",
			slog.String("profile_id", profileID),
			slog.String("beneficiary_type", string(req.BeneficiaryType)))
		return nil, err
	}
	return &b, nil
}

// ReplaceByType swaps out every beneficiary of each type present in the batch.
// Types missing from the batch are left untouched. Delete and insert commit together or not at all.
func (s *beneficiaryService) ReplaceByType(ctx context.Context, profileID string, req dto.ReplaceBeneficiariesRequest, userID string) ([]domain.Beneficiary, error) {
	ts := now()
	items := make([]domain.Beneficiary, len(req.Beneficiaries))
	for i, r := range req.Beneficiaries {
		items[i] = newBeneficiary(profileID, r, userID, ts)
	}

	var removed int64
	err := s.RunInTx(ctx, s.beneficiaryRepo, func(tx pgx.Tx) error {
		if _, err := s.profileRepo.FindProfileByIDForUpdate(ctx, tx, profileID); err != nil {
			return err
		}
		types, err := domain.ValidateReplacementBatch(items)
		if err != nil {
			return err
		}

		removed, err = s.beneficiaryRepo.DeleteBeneficiariesByTypesInTx(ctx, tx, profileID, types)
		if err != nil {
			return err
		}
		if err := s.beneficiaryRepo.SaveBeneficiariesInTx(ctx, tx, items); err != nil {
			return err
		}
		for _, t := range types {
			if t == domain.BeneficiaryPrimary {
				return s.raiseIfAllocated(ctx, tx, profileID, domain.FullAllocation, userID, ts)
			}
		}
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to replace beneficiaries", slog.String("profile_id", profileID))
		return nil, err
	}

	s.LogInfo(ctx, "Beneficiaries replaced",
		slog.String("profile_id", profileID),
		slog.Int64("removed", removed),
		slog.Int("added", len(items)))
	return items, nil
}

// Update edits a beneficiary in place. The rest of its type plus the new percentage may not exceed 100%.
func (s *beneficiaryService) Update(ctx context.Context, beneficiaryID string, req dto.UpdateBeneficiaryRequest, userID string) (*domain.Beneficiary, error) {
	existing, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, beneficiaryID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to load beneficiary", slog.String("beneficiary_id", beneficiaryID))
		return nil, err
	}

	ts := now()
	var updated domain.Beneficiary
	err = s.RunInTx(ctx, s.beneficiaryRepo, func(tx pgx.Tx) error {
		// Lock order is profile then beneficiary, the same as every other allocation write.
		if _, err := s.profileRepo.FindProfileByIDForUpdate(ctx, tx, existing.ProfileID); err != nil {
			return err
		}
		locked, err := s.beneficiaryRepo.FindBeneficiaryByIDForUpdate(ctx, tx, beneficiaryID)
		if err != nil {
			return err
		}

		updated = *locked
		applyBeneficiaryUpdate(&updated, req, userID, ts)
		if err := updated.Validate(); err != nil {
			return err
		}

		others, err := s.beneficiaryRepo.SumPercentagesInTx(ctx, tx, updated.ProfileID, updated.BeneficiaryType, beneficiaryID)
		if err != nil {
			return err
		}
		if domain.ExceedsCap(others, updated.PercentageOfBenefit) {
			return fmt.Errorf("%w: other %s beneficiaries total %s%%; %s%% would exceed 100%%",
				apperrors.ErrBusinessRule, updated.BeneficiaryType, others.String(), updated.PercentageOfBenefit.String())
		}
		if err := s.beneficiaryRepo.UpdateBeneficiaryInTx(ctx, tx, updated); err != nil {
			return err
		}
		if updated.BeneficiaryType == domain.BeneficiaryPrimary {
			return s.raiseIfAllocated(ctx, tx, updated.ProfileID, others.Add(updated.PercentageOfBenefit), userID, ts)
		}
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update beneficiary", slog.String("beneficiary_id", beneficiaryID))
		return nil, err
	}
	return &updated, nil
}

// Delete removes a beneficiary without rebalancing the rest of its type.
func (s *beneficiaryService) Delete(ctx context.Context, beneficiaryID string, userID string) error {
	existing, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, beneficiaryID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to load beneficiary", slog.String("beneficiary_id", beneficiaryID))
		return err
	}

	var remaining decimal.Decimal
	err = s.RunInTx(ctx, s.beneficiaryRepo, func(tx pgx.Tx) error {
		if _, err := s.profileRepo.FindProfileByIDForUpdate(ctx, tx, existing.ProfileID); err != nil {
			return err
		}
		if err := s.beneficiaryRepo.DeleteBeneficiaryInTx(ctx, tx, beneficiaryID); err != nil {
			return err
		}
		total, err := s.beneficiaryRepo.SumPercentagesInTx(ctx, tx, existing.ProfileID, existing.BeneficiaryType, "")
		remaining = total
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete beneficiary", slog.String("beneficiary_id", beneficiaryID))
		return err
	}

	s.LogWarn(ctx, "Beneficiary deleted; remaining allocation is not rebalanced",
		slog.String("profile_id", existing.ProfileID),
		slog.String("beneficiary_type", string(existing.BeneficiaryType)),
		slog.String("remaining_total", remaining.String()),
		slog.String("deleted_by", userID))
	return nil
}

// GetGrouped returns the read-only allocation view. Totals under 100% are reported, not corrected.
func (s *beneficiaryService) GetGrouped(ctx context.Context, profileID string) (*domain.BeneficiaryAllocation, error) {
	if _, err := s.profileRepo.FindProfileByID(ctx, profileID); err != nil {
		s.LogFailure(ctx, err, "Cannot list beneficiaries", slog.String("profile_id", profileID))
		return nil, err
	}
	list, err := s.beneficiaryRepo.ListBeneficiariesByProfileID(ctx, profileID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list beneficiaries", slog.String("profile_id", profileID))
		return nil, err
	}
	alloc := domain.GroupBeneficiaries(list)
	return &alloc, nil
}
