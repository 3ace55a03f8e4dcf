package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/investor_onboarding_app/internal/apperrors"
	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	portsrepo "github.com/SscSPs/investor_onboarding_app/internal/core/ports/repositories"
	"github.com/SscSPs/investor_onboarding_app/internal/models"
	"github.com/SscSPs/investor_onboarding_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProfileRepository struct {
	BaseRepository
}

// newPgxProfileRepository creates a new repository for investor profiles and their type-specific details.
func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepositoryWithTx {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProfileRepositoryWithTx = (*PgxProfileRepository)(nil)

const profileColumns = `p.profile_id, p.user_id, p.investor_type, p.is_accredited, p.accreditation_type,
	p.completion_percentage, p.is_active, p.created_at, p.created_by, p.last_updated_at, p.last_updated_by`

const profileWithDetailQuery = `
	SELECT ` + profileColumns + `,
		d.detail_id, d.investor_type, d.attributes, d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
	FROM investor_profiles p
	JOIN investor_type_details d ON d.profile_id = p.profile_id
`

func scanProfileWithDetail(row pgx.Row) (*domain.InvestorProfile, error) {
	var mp models.InvestorProfile
	var md models.InvestorTypeDetail
	err := row.Scan(
		&mp.ProfileID, &mp.UserID, &mp.InvestorType, &mp.IsAccredited, &mp.AccreditationType,
		&mp.CompletionPercentage, &mp.IsActive, &mp.CreatedAt, &mp.CreatedBy, &mp.LastUpdatedAt, &mp.LastUpdatedBy,
		&md.DetailID, &md.InvestorType, &md.Attributes, &md.CreatedAt, &md.CreatedBy, &md.LastUpdatedAt, &md.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	md.ProfileID = mp.ProfileID

	detail, err := mapping.ToDomainTypeSpecificDetail(md)
	if err != nil {
		return nil, err
	}
	profile := mapping.ToDomainInvestorProfile(mp)
	profile.Detail = &detail
	return &profile, nil
}

// FindProfileByID retrieves a profile with its type-specific detail.
func (r *PgxProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.InvestorProfile, error) {
	profile, err := scanProfileWithDetail(r.Pool.QueryRow(ctx, profileWithDetailQuery+` WHERE p.profile_id = $1;`, profileID))
	if err != nil {
		return nil, notFoundOr(err, "investor profile %s", profileID)
	}
	return profile, nil
}

// FindProfileByUserID retrieves the profile owned by a user.
func (r *PgxProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.InvestorProfile, error) {
	profile, err := scanProfileWithDetail(r.Pool.QueryRow(ctx, profileWithDetailQuery+` WHERE p.user_id = $1;`, userID))
	if err != nil {
		return nil, notFoundOr(err, "investor profile for user %s", userID)
	}
	return profile, nil
}

// UpdateAccreditationClaim persists the profile-level accreditation flag and type.
func (r *PgxProfileRepository) UpdateAccreditationClaim(ctx context.Context, profile domain.InvestorProfile) error {
	m := mapping.ToModelInvestorProfile(profile)
	query := `
		UPDATE investor_profiles
		SET is_accredited = $2, accreditation_type = $3, last_updated_at = $4, last_updated_by = $5
		WHERE profile_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query, m.ProfileID, m.IsAccredited, m.AccreditationType, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return writeError(err, "update accreditation claim")
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: investor profile %s", apperrors.ErrNotFound, profile.ProfileID)
	}
	return nil
}

// RaiseCompletion lifts completion_percentage to at least floor.
func (r *PgxProfileRepository) RaiseCompletion(ctx context.Context, profileID string, floor int, userID string, now time.Time) error {
	return raiseCompletion(ctx, r.Pool, profileID, floor, userID, now)
}

// RaiseCompletionInTx lifts completion_percentage to at least floor within tx.
func (r *PgxProfileRepository) RaiseCompletionInTx(ctx context.Context, tx pgx.Tx, profileID string, floor int, userID string, now time.Time) error {
	return raiseCompletion(ctx, tx, profileID, floor, userID, now)
}

func raiseCompletion(ctx context.Context, q querier, profileID string, floor int, userID string, now time.Time) error {
	// Rows already at or above floor are left alone, audit columns included.
	query := `
		UPDATE investor_profiles
		SET completion_percentage = GREATEST(completion_percentage, $2), last_updated_at = $3, last_updated_by = $4
		WHERE profile_id = $1 AND completion_percentage < $2;
	`
	if _, err := q.Exec(ctx, query, profileID, floor, now, userID); err != nil {
		return fmt.Errorf("failed to raise completion for profile %s: %w", profileID, err)
	}
	return nil
}

// SaveProfileWithDetailInTx inserts a profile and its type-specific detail in tx.
func (r *PgxProfileRepository) SaveProfileWithDetailInTx(ctx context.Context, tx pgx.Tx, profile domain.InvestorProfile, detail domain.TypeSpecificDetail) error {
	mp := mapping.ToModelInvestorProfile(profile)
	md, err := mapping.ToModelInvestorTypeDetail(detail)
	if err != nil {
		return err
	}

	profileQuery := `
		INSERT INTO investor_profiles (profile_id, user_id, investor_type, is_accredited, accreditation_type,
			completion_percentage, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, profileQuery,
		mp.ProfileID, mp.UserID, mp.InvestorType, mp.IsAccredited, mp.AccreditationType,
		mp.CompletionPercentage, mp.IsActive, mp.CreatedAt, mp.CreatedBy, mp.LastUpdatedAt, mp.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, fmt.Sprintf("create investor profile for user %s", mp.UserID))
	}

	detailQuery := `
		INSERT INTO investor_type_details (detail_id, profile_id, investor_type, attributes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, detailQuery,
		md.DetailID, md.ProfileID, md.InvestorType, md.Attributes,
		md.CreatedAt, md.CreatedBy, md.LastUpdatedAt, md.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, fmt.Sprintf("create %s detail", md.InvestorType))
	}
	return nil
}

// FindProfileByIDForUpdate locks the profile row until tx ends.
func (r *PgxProfileRepository) FindProfileByIDForUpdate(ctx context.Context, tx pgx.Tx, profileID string) (*domain.InvestorProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM investor_profiles p WHERE p.profile_id = $1 FOR UPDATE;`

	var mp models.InvestorProfile
	err := tx.QueryRow(ctx, query, profileID).Scan(
		&mp.ProfileID, &mp.UserID, &mp.InvestorType, &mp.IsAccredited, &mp.AccreditationType,
		&mp.CompletionPercentage, &mp.IsActive, &mp.CreatedAt, &mp.CreatedBy, &mp.LastUpdatedAt, &mp.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "investor profile %s", profileID)
	}
	profile := mapping.ToDomainInvestorProfile(mp)
	return &profile, nil
}
