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
)

type PgxAccreditationRepository struct {
	BaseRepository
}

// newPgxAccreditationRepository creates a new repository for accreditations and their documents.
func newPgxAccreditationRepository(pool *pgxpool.Pool) portsrepo.AccreditationRepositoryWithTx {
	return &PgxAccreditationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccreditationRepositoryWithTx = (*PgxAccreditationRepository)(nil)

const accreditationColumns = `accreditation_id, profile_id, accreditation_type, license_number, state_license_held,
	review_status, is_verified, verification_date, verified_by, notes,
	created_at, created_by, last_updated_at, last_updated_by`

// loadAccreditation scans one accreditation row from query and attaches its documents.
func loadAccreditation(ctx context.Context, q querier, query string, args ...any) (*domain.Accreditation, error) {
	var m models.Accreditation
	err := q.QueryRow(ctx, query, args...).Scan(
		&m.AccreditationID, &m.ProfileID, &m.AccreditationType, &m.LicenseNumber, &m.StateLicenseHeld,
		&m.ReviewStatus, &m.IsVerified, &m.VerificationDate, &m.VerifiedBy, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	acc := mapping.ToDomainAccreditation(m)
	docs, err := listDocuments(ctx, q, acc.AccreditationID)
	if err != nil {
		return nil, err
	}
	acc.Documents = docs
	return &acc, nil
}

func listDocuments(ctx context.Context, q querier, accreditationID string) ([]domain.AccreditationDocument, error) {
	query := `
		SELECT document_id, accreditation_id, document_type, storage_path, file_size, content_type, upload_date, uploaded_by
		FROM accreditation_documents
		WHERE accreditation_id = $1
		ORDER BY upload_date;
	`
	rows, err := q.Query(ctx, query, accreditationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents of accreditation %s: %w", accreditationID, err)
	}
	defer rows.Close()

	docs := []domain.AccreditationDocument{}
	for rows.Next() {
		var m models.AccreditationDocument
		if err := rows.Scan(
			&m.DocumentID, &m.AccreditationID, &m.DocumentType, &m.StoragePath,
			&m.FileSize, &m.ContentType, &m.UploadDate, &m.UploadedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		docs = append(docs, mapping.ToDomainAccreditationDocument(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}
	return docs, nil
}

// FindAccreditationByID retrieves an accreditation with its documents.
func (r *PgxAccreditationRepository) FindAccreditationByID(ctx context.Context, accreditationID string) (*domain.Accreditation, error) {
	query := `SELECT ` + accreditationColumns + ` FROM investor_accreditations WHERE accreditation_id = $1;`
	acc, err := loadAccreditation(ctx, r.Pool, query, accreditationID)
	if err != nil {
		return nil, notFoundOr(err, "accreditation %s", accreditationID)
	}
	return acc, nil
}

// FindAccreditationByProfileID retrieves the accreditation of a profile.
func (r *PgxAccreditationRepository) FindAccreditationByProfileID(ctx context.Context, profileID string) (*domain.Accreditation, error) {
	query := `SELECT ` + accreditationColumns + ` FROM investor_accreditations WHERE profile_id = $1;`
	acc, err := loadAccreditation(ctx, r.Pool, query, profileID)
	if err != nil {
		return nil, notFoundOr(err, "accreditation for profile %s", profileID)
	}
	return acc, nil
}

// UpsertAccreditationInTx writes the submission and clears any verification, in one statement.
// Reviewer notes survive a resubmission.
func (r *PgxAccreditationRepository) UpsertAccreditationInTx(ctx context.Context, tx pgx.Tx, accreditation domain.Accreditation) (*domain.Accreditation, error) {
	m := mapping.ToModelAccreditation(accreditation)
	query := `
		INSERT INTO investor_accreditations (` + accreditationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NULL, NULL, NULL, $7, $8, $9, $10)
		ON CONFLICT (profile_id) DO UPDATE
		SET accreditation_type = EXCLUDED.accreditation_type,
			license_number = EXCLUDED.license_number,
			state_license_held = EXCLUDED.state_license_held,
			review_status = EXCLUDED.review_status,
			is_verified = FALSE,
			verification_date = NULL,
			verified_by = NULL,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + accreditationColumns + `;
	`
	acc, err := loadAccreditation(ctx, tx, query,
		m.AccreditationID, m.ProfileID, m.AccreditationType, m.LicenseNumber, m.StateLicenseHeld, m.ReviewStatus,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, writeError(err, fmt.Sprintf("save accreditation for profile %s", m.ProfileID))
	}
	return acc, nil
}

// UpdateVerification overwrites the review outcome and notes.
func (r *PgxAccreditationRepository) UpdateVerification(ctx context.Context, accreditation domain.Accreditation) error {
	m := mapping.ToModelAccreditation(accreditation)
	query := `
		UPDATE investor_accreditations
		SET review_status = $2, is_verified = $3, verification_date = $4, verified_by = $5, notes = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE accreditation_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query,
		m.AccreditationID, m.ReviewStatus, m.IsVerified, m.VerificationDate, m.VerifiedBy, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, fmt.Sprintf("update verification of accreditation %s", m.AccreditationID))
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: accreditation %s", apperrors.ErrNotFound, m.AccreditationID)
	}
	return nil
}

// SaveDocument records document metadata.
func (r *PgxAccreditationRepository) SaveDocument(ctx context.Context, document domain.AccreditationDocument) error {
	m := mapping.ToModelAccreditationDocument(document)
	query := `
		INSERT INTO accreditation_documents (document_id, accreditation_id, document_type, storage_path,
			file_size, content_type, upload_date, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DocumentID, m.AccreditationID, m.DocumentType, m.StoragePath,
		m.FileSize, m.ContentType, m.UploadDate, m.UploadedBy,
	)
	if err != nil {
		return writeError(err, fmt.Sprintf("save document for accreditation %s", m.AccreditationID))
	}
	return nil
}

// DeleteDocument removes a document record.
func (r *PgxAccreditationRepository) DeleteDocument(ctx context.Context, documentID string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM accreditation_documents WHERE document_id = $1;`, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", documentID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: accreditation document %s", apperrors.ErrNotFound, documentID)
	}
	return nil
}
