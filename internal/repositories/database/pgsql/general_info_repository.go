package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	portsrepo "github.com/SscSPs/investor_onboarding_app/internal/core/ports/repositories"
	"github.com/SscSPs/investor_onboarding_app/internal/models"
	"github.com/SscSPs/investor_onboarding_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGeneralInfoRepository struct {
	BaseRepository
}

// newPgxGeneralInfoRepository creates a new repository for general info and its parties.
func newPgxGeneralInfoRepository(pool *pgxpool.Pool) portsrepo.GeneralInfoRepositoryWithTx {
	return &PgxGeneralInfoRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GeneralInfoRepositoryWithTx = (*PgxGeneralInfoRepository)(nil)

const generalInfoColumns = `general_info_id, detail_id, profile_id, investor_type, attributes,
	created_at, created_by, last_updated_at, last_updated_by`

// loadGeneralInfo runs query (selecting generalInfoColumns) and attaches the parties.
func loadGeneralInfo(ctx context.Context, q querier, query string, arg string) (*domain.GeneralInfo, error) {
	var m models.GeneralInfo
	err := q.QueryRow(ctx, query, arg).Scan(
		&m.GeneralInfoID, &m.DetailID, &m.ProfileID, &m.InvestorType, &m.Attributes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "general info %s", arg)
	}

	info, err := mapping.ToDomainGeneralInfo(m)
	if err != nil {
		return nil, err
	}
	parties, err := listParties(ctx, q, info.GeneralInfoID)
	if err != nil {
		return nil, err
	}
	info.Parties = parties
	return &info, nil
}

func listParties(ctx context.Context, q querier, generalInfoID string) ([]domain.GeneralInfoParty, error) {
	query := `
		SELECT party_id, general_info_id, kind, order_index, attributes, created_at, created_by, last_updated_at, last_updated_by
		FROM general_info_parties
		WHERE general_info_id = $1
		ORDER BY order_index, created_at;
	`
	rows, err := q.Query(ctx, query, generalInfoID)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties of general info %s: %w", generalInfoID, err)
	}
	defer rows.Close()

	parties := []domain.GeneralInfoParty{}
	for rows.Next() {
		var m models.GeneralInfoParty
		if err := rows.Scan(
			&m.PartyID, &m.GeneralInfoID, &m.Kind, &m.OrderIndex, &m.Attributes,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan party row: %w", err)
		}
		party, err := mapping.ToDomainGeneralInfoParty(m)
		if err != nil {
			return nil, err
		}
		parties = append(parties, party)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating party rows: %w", err)
	}
	return parties, nil
}

// FindGeneralInfoByDetailID retrieves the general info attached to a type-specific detail.
func (r *PgxGeneralInfoRepository) FindGeneralInfoByDetailID(ctx context.Context, detailID string) (*domain.GeneralInfo, error) {
	query := `SELECT ` + generalInfoColumns + ` FROM general_infos WHERE detail_id = $1;`
	return loadGeneralInfo(ctx, r.Pool, query, detailID)
}

// FindGeneralInfoByID retrieves a general info by its identifier.
func (r *PgxGeneralInfoRepository) FindGeneralInfoByID(ctx context.Context, generalInfoID string) (*domain.GeneralInfo, error) {
	query := `SELECT ` + generalInfoColumns + ` FROM general_infos WHERE general_info_id = $1;`
	return loadGeneralInfo(ctx, r.Pool, query, generalInfoID)
}

// UpsertGeneralInfo inserts or updates the general info of a detail in one statement.
// On conflict the creation columns and identifier of the existing row are kept.
func (r *PgxGeneralInfoRepository) UpsertGeneralInfo(ctx context.Context, info domain.GeneralInfo) (*domain.GeneralInfo, error) {
	m, err := mapping.ToModelGeneralInfo(info)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO general_infos (` + generalInfoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (detail_id) DO UPDATE
		SET attributes = EXCLUDED.attributes,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING general_info_id;
	`
	var storedID string
	err = r.Pool.QueryRow(ctx, query,
		m.GeneralInfoID, m.DetailID, m.ProfileID, m.InvestorType, m.Attributes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&storedID)
	if err != nil {
		return nil, writeError(err, fmt.Sprintf("save %s general info", m.InvestorType))
	}
	return r.FindGeneralInfoByID(ctx, storedID)
}

// FindGeneralInfoByIDForUpdate locks the general info row for the rest of tx.
func (r *PgxGeneralInfoRepository) FindGeneralInfoByIDForUpdate(ctx context.Context, tx pgx.Tx, generalInfoID string) (*domain.GeneralInfo, error) {
	query := `SELECT ` + generalInfoColumns + ` FROM general_infos WHERE general_info_id = $1 FOR UPDATE;`
	return loadGeneralInfo(ctx, tx, query, generalInfoID)
}

// SavePartyInTx inserts a child record under a general info.
func (r *PgxGeneralInfoRepository) SavePartyInTx(ctx context.Context, tx pgx.Tx, party domain.GeneralInfoParty) error {
	m, err := mapping.ToModelGeneralInfoParty(party)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO general_info_parties (party_id, general_info_id, kind, order_index, attributes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, query,
		m.PartyID, m.GeneralInfoID, m.Kind, m.OrderIndex, m.Attributes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, fmt.Sprintf("add %s", m.Kind))
	}
	return nil
}
