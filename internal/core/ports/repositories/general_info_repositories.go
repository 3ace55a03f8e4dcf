package repositories

import (
	"context"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// GeneralInfoReader defines read operations for general info and its child records.
type GeneralInfoReader interface {
	// FindGeneralInfoByDetailID retrieves the general info of a type-specific detail, parties included.
	FindGeneralInfoByDetailID(ctx context.Context, detailID string) (*domain.GeneralInfo, error)

	// FindGeneralInfoByID retrieves a general info by its identifier, parties included.
	FindGeneralInfoByID(ctx context.Context, generalInfoID string) (*domain.GeneralInfo, error)
}

// GeneralInfoWriter defines write operations for general info.
type GeneralInfoWriter interface {
	// UpsertGeneralInfo inserts the general info for its detail, or updates it in place if one exists.
	// The returned record carries the stored identifier and creation audit fields.
	UpsertGeneralInfo(ctx context.Context, info domain.GeneralInfo) (*domain.GeneralInfo, error)
}

// GeneralInfoTransactionSupport defines child-record operations that run inside a transaction.
type GeneralInfoTransactionSupport interface {
	// FindGeneralInfoByIDForUpdate locks a general info row and returns it with its parties.
	FindGeneralInfoByIDForUpdate(ctx context.Context, tx pgx.Tx, generalInfoID string) (*domain.GeneralInfo, error)

	// SavePartyInTx inserts a child record under a general info.
	SavePartyInTx(ctx context.Context, tx pgx.Tx, party domain.GeneralInfoParty) error
}

// GeneralInfoRepositoryFacade combines all general-info repository interfaces
type GeneralInfoRepositoryFacade interface {
	GeneralInfoReader
	GeneralInfoWriter
	GeneralInfoTransactionSupport
}

// GeneralInfoRepositoryWithTx extends GeneralInfoRepositoryFacade with transaction capabilities
type GeneralInfoRepositoryWithTx interface {
	GeneralInfoRepositoryFacade
	TransactionManager
}
