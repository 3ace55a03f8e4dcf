package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ProfileReader defines read operations for investor profiles.
// Profiles are returned with their type-specific detail attached.
type ProfileReader interface {
	// FindProfileByID retrieves a profile by its unique identifier.
	FindProfileByID(ctx context.Context, profileID string) (*domain.InvestorProfile, error)

	// FindProfileByUserID retrieves the single profile owned by a user.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.InvestorProfile, error)
}

// ProfileWriter defines write operations for investor profiles.
type ProfileWriter interface {
	// UpdateAccreditationClaim persists the profile-level accreditation flag and type.
	UpdateAccreditationClaim(ctx context.Context, profile domain.InvestorProfile) error

	// RaiseCompletion lifts the completion percentage to at least floor. It never lowers it.
	RaiseCompletion(ctx context.Context, profileID string, floor int, userID string, now time.Time) error
}

// ProfileTransactionSupport defines profile operations that run inside a caller's transaction.
type ProfileTransactionSupport interface {
	// SaveProfileWithDetailInTx inserts a profile and its type-specific detail.
	// A second profile for the same user fails with apperrors.ErrDuplicate.
	SaveProfileWithDetailInTx(ctx context.Context, tx pgx.Tx, profile domain.InvestorProfile, detail domain.TypeSpecificDetail) error

	// FindProfileByIDForUpdate loads a profile (without detail) and locks its row until the transaction ends.
	// Every write to data aggregated per profile takes this lock first.
	FindProfileByIDForUpdate(ctx context.Context, tx pgx.Tx, profileID string) (*domain.InvestorProfile, error)

	// RaiseCompletionInTx is RaiseCompletion within a transaction.
	RaiseCompletionInTx(ctx context.Context, tx pgx.Tx, profileID string, floor int, userID string, now time.Time) error
}

// ProfileRepositoryFacade combines all profile-related repository interfaces
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
	ProfileTransactionSupport
}

// ProfileRepositoryWithTx extends ProfileRepositoryFacade with transaction capabilities
type ProfileRepositoryWithTx interface {
	ProfileRepositoryFacade
	TransactionManager
}
