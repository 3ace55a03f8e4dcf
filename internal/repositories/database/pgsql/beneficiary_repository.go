package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/investor_onboarding_app/internal/apperrors"
	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	portsrepo "github.com/SscSPs/investor_onboarding_app/internal/core/ports/repositories"
	"github.com/SscSPs/investor_onboarding_app/internal/models"
	"github.com/SscSPs/investor_onboarding_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxBeneficiaryRepository struct {
	BaseRepository
}

// newPgxBeneficiaryRepository creates a new repository for beneficiaries.
func newPgxBeneficiaryRepository(pool *pgxpool.Pool) portsrepo.BeneficiaryRepositoryWithTx {
	return &PgxBeneficiaryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BeneficiaryRepositoryWithTx = (*PgxBeneficiaryRepository)(nil)

const beneficiaryColumns = `beneficiary_id, profile_id, beneficiary_type, first_name, last_name, relationship,
	date_of_birth, email, phone, percentage_of_benefit, created_at, created_by, last_updated_at, last_updated_by`

func scanBeneficiary(row pgx.Row) (models.Beneficiary, error) {
	var m models.Beneficiary
	err := row.Scan(
		&m.BeneficiaryID, &m.ProfileID, &m.BeneficiaryType, &m.FirstName, &m.LastName, &m.Relationship,
		&m.DateOfBirth, &m.Email, &m.Phone, &m.PercentageOfBenefit,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindBeneficiaryByID retrieves a beneficiary by its unique identifier.
func (r *PgxBeneficiaryRepository) FindBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error) {
	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries WHERE beneficiary_id = $1;`
	m, err := scanBeneficiary(r.Pool.QueryRow(ctx, query, beneficiaryID))
	if err != nil {
		return nil, notFoundOr(err, "beneficiary %s", beneficiaryID)
	}
	b := mapping.ToDomainBeneficiary(m)
	return &b, nil
}

// ListBeneficiariesByProfileID retrieves every beneficiary of a profile.
func (r *PgxBeneficiaryRepository) ListBeneficiariesByProfileID(ctx context.Context, profileID string) ([]domain.Beneficiary, error) {
	query := `
		SELECT ` + beneficiaryColumns + `
		FROM beneficiaries
		WHERE profile_id = $1
		ORDER BY beneficiary_type, percentage_of_benefit DESC, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query beneficiaries for profile %s: %w", profileID, err)
	}
	defer rows.Close()

	var ms []models.Beneficiary
	for rows.Next() {
		m, err := scanBeneficiary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan beneficiary row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating beneficiary rows: %w", err)
	}
	return mapping.ToDomainBeneficiarySlice(ms), nil
}

// FindBeneficiaryByIDForUpdate loads a beneficiary and locks its row.
func (r *PgxBeneficiaryRepository) FindBeneficiaryByIDForUpdate(ctx context.Context, tx pgx.Tx, beneficiaryID string) (*domain.Beneficiary, error) {
	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries WHERE beneficiary_id = $1 FOR UPDATE;`
	m, err := scanBeneficiary(tx.QueryRow(ctx, query, beneficiaryID))
	if err != nil {
		return nil, notFoundOr(err, "beneficiary %s", beneficiaryID)
	}
	b := mapping.ToDomainBeneficiary(m)
	return &b, nil
}

// SumPercentagesInTx totals the allocation of one beneficiary type, optionally excluding one row.
func (r *PgxBeneficiaryRepository) SumPercentagesInTx(ctx context.Context, tx pgx.Tx, profileID string, beneficiaryType domain.BeneficiaryType, excludeID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(percentage_of_benefit), 0)
		FROM beneficiaries
		WHERE profile_id = $1 AND beneficiary_type = $2 AND beneficiary_id <> $3;
	`
	var total decimal.Decimal
	if err := tx.QueryRow(ctx, query, profileID, string(beneficiaryType), excludeID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s beneficiaries for profile %s: %w", beneficiaryType, profileID, err)
	}
	return total, nil
}

// SaveBeneficiariesInTx inserts beneficiaries as one batch.
func (r *PgxBeneficiaryRepository) SaveBeneficiariesInTx(ctx context.Context, tx pgx.Tx, beneficiaries []domain.Beneficiary) error {
	if len(beneficiaries) == 0 {
		return nil
	}

	query := `
		INSERT INTO beneficiaries (` + beneficiaryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	batch := &pgx.Batch{}
	for _, b := range beneficiaries {
		m := mapping.ToModelBeneficiary(b)
		batch.Queue(query,
			m.BeneficiaryID, m.ProfileID, m.BeneficiaryType, m.FirstName, m.LastName, m.Relationship,
			m.DateOfBirth, m.Email, m.Phone, m.PercentageOfBenefit,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = writeError(err, fmt.Sprintf("insert beneficiary %s", beneficiaries[i].BeneficiaryID))
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close beneficiary insert batch: %w", err)
	}
	return batchErr
}

// UpdateBeneficiaryInTx overwrites the editable fields of a beneficiary.
func (r *PgxBeneficiaryRepository) UpdateBeneficiaryInTx(ctx context.Context, tx pgx.Tx, beneficiary domain.Beneficiary) error {
	m := mapping.ToModelBeneficiary(beneficiary)
	query := `
		UPDATE beneficiaries
		SET first_name = $2, last_name = $3, relationship = $4, date_of_birth = $5, email = $6, phone = $7,
			percentage_of_benefit = $8, last_updated_at = $9, last_updated_by = $10
		WHERE beneficiary_id = $1;
	`
	ct, err := tx.Exec(ctx, query,
		m.BeneficiaryID, m.FirstName, m.LastName, m.Relationship, m.DateOfBirth, m.Email, m.Phone,
		m.PercentageOfBenefit, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, fmt.Sprintf("update beneficiary %s", m.BeneficiaryID))
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: beneficiary %s", apperrors.ErrNotFound, m.BeneficiaryID)
	}
	return nil
}

// DeleteBeneficiaryInTx removes one beneficiary.
func (r *PgxBeneficiaryRepository) DeleteBeneficiaryInTx(ctx context.Context, tx pgx.Tx, beneficiaryID string) error {
	ct, err := tx.Exec(ctx, `DELETE FROM beneficiaries WHERE beneficiary_id = $1;`, beneficiaryID)
	if err != nil {
		return fmt.Errorf("failed to delete beneficiary %s: %w", beneficiaryID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: beneficiary %s", apperrors.ErrNotFound, beneficiaryID)
	}
	return nil
}

// DeleteBeneficiariesByTypesInTx removes all of a profile's beneficiaries of the listed types.
func (r *PgxBeneficiaryRepository) DeleteBeneficiariesByTypesInTx(ctx context.Context, tx pgx.Tx, profileID string, types []domain.BeneficiaryType) (int64, error) {
	if len(types) == 0 {
		return 0, nil
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	ct, err := tx.Exec(ctx, `DELETE FROM beneficiaries WHERE profile_id = $1 AND beneficiary_type = ANY($2);`, profileID, names)
	if err != nil {
		return 0, fmt.Errorf("failed to clear beneficiaries for profile %s: %w", profileID, err)
	}
	return ct.RowsAffected(), nil
}
