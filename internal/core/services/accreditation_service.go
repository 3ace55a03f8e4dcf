package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/investor_onboarding_app/internal/apperrors"
	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	portsrepo "github.com/SscSPs/investor_onboarding_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investor_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// accreditationService runs the Submitted -> Verified | Rejected workflow.
type accreditationService struct {
	BaseService
	profileRepo       portsrepo.ProfileRepositoryFacade
	accreditationRepo portsrepo.AccreditationRepositoryWithTx
}

func NewAccreditationService(profileRepo portsrepo.ProfileRepositoryFacade, accreditationRepo portsrepo.AccreditationRepositoryWithTx) portssvc.AccreditationSvcFacade {
	return &accreditationService{
		profileRepo:       profileRepo,
		accreditationRepo: accreditationRepo,
	}
}

var _ portssvc.AccreditationSvcFacade = (*accreditationService)(nil)

// Save inserts or overwrites the profile's accreditation. Every save returns the record to
// SUBMITTED and clears verification, even when the type is unchanged.
func (s *accreditationService) Save(ctx context.Context, profileID string, req dto.SaveAccreditationRequest, userID string) (*domain.Accreditation, error) {
	ts := now()
	submission := domain.Accreditation{
		AccreditationID:   uuid.NewString(),
		ProfileID:         profileID,
		AccreditationType: req.AccreditationType,
		LicenseNumber:     req.LicenseNumber,
		StateLicenseHeld:  req.StateLicenseHeld,
		AuditFields:       domain.NewAuditFields(userID, ts),
	}
	submission.ResetVerification()

	var saved *domain.Accreditation
	err := s.RunInTx(ctx, s.accreditationRepo, func(tx pgx.Tx) error {
		if _, err := s.profileRepo.FindProfileByIDForUpdate(ctx, tx, profileID); err != nil {
			return err
		}
		if err := domain.ValidateAccreditationSubmission(submission.AccreditationType, submission.LicenseNumber, submission.StateLicenseHeld); err != nil {
			return err
		}

		var err error
		saved, err = s.accreditationRepo.UpsertAccreditationInTx(ctx, tx, submission)
		if err != nil {
			return err
		}
		return s.profileRepo.RaiseCompletionInTx(ctx, tx, profileID, domain.CompletionAccreditation, userID, ts)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save accreditation",
			slog.String("profile_id", profileID),
			slog.Int("accreditation_type", int(req.AccreditationType)))
		return nil, err
	}

	s.LogInfo(ctx, "Accreditation submitted for review",
		slog.String("profile_id", profileID),
		slog.String("accreditation_id", saved.AccreditationID),
		slog.String("accreditation_type", saved.AccreditationType.String()))
	return saved, nil
}

func (s *accreditationService) Get(ctx context.Context, profileID string) (*domain.Accreditation, error) {
	acc, err := s.accreditationRepo.FindAccreditationByProfileID(ctx, profileID)
	if err != nil {
		s.LogFailure(ctx, err, "Accreditation not available", slog.String("profile_id", profileID))
		return nil, err
	}
	return acc, nil
}

// UploadDocument records metadata only. The file is already stored and content checks happen upstream.
func (s *accreditationService) UploadDocument(ctx context.Context, accreditationID string, req dto.UploadDocumentRequest, userID string) (*domain.AccreditationDocument, error) {
	if _, err := s.accreditationRepo.FindAccreditationByID(ctx, accreditationID); err != nil {
		s.LogFailure(ctx, err, "Cannot attach document", slog.String("accreditation_id", accreditationID))
		return nil, err
	}

	doc := domain.AccreditationDocument{
		DocumentID:      uuid.NewString(),
		AccreditationID: accreditationID,
		DocumentType:    req.DocumentType,
		StoragePath:     req.StoragePath,
		FileSize:        req.FileSize,
		ContentType:     req.ContentType,
		UploadDate:      now(),
		UploadedBy:      userID,
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := s.accreditationRepo.SaveDocument(ctx, doc); err != nil {
		s.LogFailure(ctx, err, "Failed to save accreditation document", slog.String("accreditation_id", accreditationID))
		return nil, err
	}
	return &doc, nil
}

// Verify fully overwrites any previous review outcome, so a record can move between VERIFIED and REJECTED.
func (s *accreditationService) Verify(ctx context.Context, accreditationID string, req dto.VerifyAccreditationRequest, verifierID string) (*domain.Accreditation, error) {
	if req.Approved == nil {
		return nil, fmt.Errorf("%w: approved is required", apperrors.ErrValidation)
	}

	acc, err := s.accreditationRepo.FindAccreditationByID(ctx, accreditationID)
	if err != nil {
		s.LogFailure(ctx, err, "Cannot verify accreditation", slog.String("accreditation_id", accreditationID))
		return nil, err
	}

	acc.ApplyReview(verifierID, *req.Approved, req.Notes, now())
	if err := s.accreditationRepo.UpdateVerification(ctx, *acc); err != nil {
		s.LogFailure(ctx, err, "Failed to record verification", slog.String("accreditation_id", accreditationID))
		return nil, err
	}

	s.LogInfo(ctx, "Accreditation reviewed",
		slog.String("accreditation_id", accreditationID),
		slog.String("review_status", string(acc.ReviewStatus)),
		slog.String("verifier_id", verifierID))
	return acc, nil
}

func (s *accreditationService) DeleteDocument(ctx context.Context, documentID string, userID string) error {
	if err := s.accreditationRepo.DeleteDocument(ctx, documentID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete accreditation document", slog.String("document_id", documentID))
		return err
	}
	s.LogInfo(ctx, "Accreditation document deleted",
		slog.String("document_id", documentID),
		slog.String("deleted_by", userID))
	return nil
}
