package repositories

import (
	"context"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccreditationReader defines read operations for accreditations.
type AccreditationReader interface {
	// FindAccreditationByID retrieves an accreditation with its documents.
	FindAccreditationByID(ctx context.Context, accreditationID string) (*domain.Accreditation, error)

	// FindAccreditationByProfileID retrieves the accreditation of a profile with its documents.
	FindAccreditationByProfileID(ctx context.Context, profileID string) (*domain.Accreditation, error)
}

// AccreditationWriter defines write operations for accreditations and their documents.
type AccreditationWriter interface {
	// UpdateVerification overwrites the review outcome and notes of an accreditation.
	UpdateVerification(ctx context.Context, accreditation domain.Accreditation) error

	// SaveDocument records metadata of an already stored document.
	SaveDocument(ctx context.Context, document domain.AccreditationDocument) error

	// DeleteDocument removes a document record. Missing documents yield apperrors.ErrNotFound.
	DeleteDocument(ctx context.Context, documentID string) error
}

// AccreditationTransactionSupport defines accreditation operations that run inside a transaction.
type AccreditationTransactionSupport interface {
	// UpsertAccreditationInTx inserts the profile's accreditation or overwrites the existing one,
	// resetting its verification state in both cases.
	UpsertAccreditationInTx(ctx context.Context, tx pgx.Tx, accreditation domain.Accreditation) (*domain.Accreditation, error)
}

// AccreditationRepositoryFacade combines all accreditation repository interfaces
type AccreditationRepositoryFacade interface {
	AccreditationReader
	AccreditationWriter
	AccreditationTransactionSupport
}

// AccreditationRepositoryWithTx extends AccreditationRepositoryFacade with transaction capabilities
type AccreditationRepositoryWithTx interface {
	AccreditationRepositoryFacade
	TransactionManager
}
