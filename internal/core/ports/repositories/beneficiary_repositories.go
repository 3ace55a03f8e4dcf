package repositories

import (
	"context"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BeneficiaryReader defines read operations for beneficiaries.
type BeneficiaryReader interface {
	// FindBeneficiaryByID retrieves a beneficiary by its unique identifier.
	FindBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error)

	// ListBeneficiariesByProfileID retrieves every beneficiary of a profile, both types.
	ListBeneficiariesByProfileID(ctx context.Context, profileID string) ([]domain.Beneficiary, error)
}

// BeneficiaryTransactionSupport defines the allocation operations. All of them expect the caller
// to hold the owning profile's row lock.
type BeneficiaryTransactionSupport interface {
	// FindBeneficiaryByIDForUpdate loads a beneficiary and locks its row.
	FindBeneficiaryByIDForUpdate(ctx context.Context, tx pgx.Tx, beneficiaryID string) (*domain.Beneficiary, error)

	// SumPercentagesInTx totals the percentage of benefit for (profileID, type).
	// A non-empty excludeID leaves that beneficiary out of the total.
	SumPercentagesInTx(ctx context.Context, tx pgx.Tx, profileID string, beneficiaryType domain.BeneficiaryType, excludeID string) (decimal.Decimal, error)

	// SaveBeneficiariesInTx inserts one or more beneficiaries.
	SaveBeneficiariesInTx(ctx context.Context, tx pgx.Tx, beneficiaries []domain.Beneficiary) error

	// UpdateBeneficiaryInTx overwrites the editable fields of an existing beneficiary.
	UpdateBeneficiaryInTx(ctx context.Context, tx pgx.Tx, beneficiary domain.Beneficiary) error

	// DeleteBeneficiaryInTx removes one beneficiary.
	DeleteBeneficiaryInTx(ctx context.Context, tx pgx.Tx, beneficiaryID string) error

	// DeleteBeneficiariesByTypesInTx removes every beneficiary of the profile whose type is listed.
	DeleteBeneficiariesByTypesInTx(ctx context.Context, tx pgx.Tx, profileID string, types []domain.BeneficiaryType) (int64, error)
}

// BeneficiaryRepositoryFacade combines all beneficiary repository interfaces
type BeneficiaryRepositoryFacade interface {
	BeneficiaryReader
	BeneficiaryTransactionSupport
}

// BeneficiaryRepositoryWithTx extends BeneficiaryRepositoryFacade with transaction capabilities
type BeneficiaryRepositoryWithTx interface {
	BeneficiaryRepositoryFacade
	TransactionManager
}
