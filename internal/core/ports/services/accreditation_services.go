package services

import (
	"context"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
)

// AccreditationReaderSvc defines read operations for accreditations
type AccreditationReaderSvc interface {
	// Get returns the profile's accreditation with its documents.
	Get(ctx context.Context, profileID string) (*domain.Accreditation, error)
}

// AccreditationWriterSvc defines the submission and review workflow
type AccreditationWriterSvc interface {
	// Save submits the accreditation, resetting any prior verification.
	Save(ctx context.Context, profileID string, req dto.SaveAccreditationRequest, userID string) (*domain.Accreditation, error)

	// UploadDocument records metadata for a document already held by the storage service.
	UploadDocument(ctx context.Context, accreditationID string, req dto.UploadDocumentRequest, userID string) (*domain.AccreditationDocument, error)

	// Verify approves or rejects the accreditation, overwriting any prior outcome.
	Verify(ctx context.Context, accreditationID string, req dto.VerifyAccreditationRequest, verifierID string) (*domain.Accreditation, error)

	// DeleteDocument removes a document record.
	DeleteDocument(ctx context.Context, documentID string, userID string) error
}

// AccreditationSvcFacade combines all accreditation service interfaces
type AccreditationSvcFacade interface {
	AccreditationReaderSvc
	AccreditationWriterSvc
}
