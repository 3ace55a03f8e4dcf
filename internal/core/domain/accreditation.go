package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/investor_onboarding_app/internal/apperrors"
)

// ReviewStatus tracks where an accreditation sits in the review workflow.
type ReviewStatus string

const (
	ReviewSubmitted ReviewStatus = "SUBMITTED"
	ReviewVerified  ReviewStatus = "VERIFIED"
	ReviewRejected  ReviewStatus = "REJECTED"
)

// Accreditation is the investor's claimed qualification, 1:1 with a profile.
type Accreditation struct {
	AccreditationID   string                  `json:"accreditationID"`
	ProfileID         string                  `json:"profileID"`
	AccreditationType AccreditationType       `json:"accreditationType"`
	LicenseNumber     *string                 `json:"licenseNumber,omitempty"`
	StateLicenseHeld  *string                 `json:"stateLicenseHeld,omitempty"`
	ReviewStatus      ReviewStatus            `json:"reviewStatus"`
	IsVerified        bool                    `json:"isVerified"`
	VerificationDate  *time.Time              `json:"verificationDate,omitempty"`
	VerifiedBy        *string                 `json:"verifiedBy,omitempty"`
	Notes             *string                 `json:"notes,omitempty"`
	Documents         []AccreditationDocument `json:"documents"`
	AuditFields
}

type AccreditationDocument struct {
	DocumentID      string    `json:"documentID"`
	AccreditationID string    `json:"accreditationID"`
	DocumentType    string    `json:"documentType"`
	StoragePath     string    `json:"storagePath"`
	FileSize        int64     `json:"fileSize"`
	ContentType     string    `json:"contentType"`
	UploadDate      time.Time `json:"uploadDate"`
	UploadedBy      string    `json:"uploadedBy"`
}

// ValidateAccreditationSubmission checks the type and, for license-based types, the license fields.
func ValidateAccreditationSubmission(t AccreditationType, licenseNumber, stateLicenseHeld *string) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: accreditationType must be between %d and %d, got %d",
			apperrors.ErrValidation, AccreditationIncome, AccreditationEntityAssets, int(t))
	}
	if t.IsLicenseBased() && (blank(licenseNumber) || blank(stateLicenseHeld)) {
		return fmt.Errorf("%w: licenseNumber and stateLicenseHeld are required for %s accreditation",
			apperrors.ErrValidation, t)
	}
	return nil
}

// ResetVerification puts the record back into review. Any submission invalidates prior sign-off.
func (a *Accreditation) ResetVerification() {
	a.ReviewStatus = ReviewSubmitted
	a.IsVerified = false
	a.VerificationDate = nil
	a.VerifiedBy = nil
}

// ApplyReview overwrites the verification outcome. Notes are replaced on both paths.
func (a *Accreditation) ApplyReview(verifierID string, approved bool, notes *string, now time.Time) {
	if approved {
		a.ReviewStatus = ReviewVerified
		a.IsVerified = true
		a.VerificationDate = &now
		a.VerifiedBy = &verifierID
	} else {
		a.ReviewStatus = ReviewRejected
		a.IsVerified = false
		a.VerificationDate = nil
		a.VerifiedBy = nil
	}
	a.Notes = notes
	a.Touch(verifierID, now)
}

func (d *AccreditationDocument) Validate() error {
	if blank(&d.DocumentType) {
		return fmt.Errorf("%w: documentType is required", apperrors.ErrValidation)
	}
	if blank(&d.StoragePath) {
		return fmt.Errorf("%w: storagePath is required", apperrors.ErrValidation)
	}
	if d.FileSize < 0 {
		return fmt.Errorf("%w: fileSize cannot be negative", apperrors.ErrValidation)
	}
	return nil
}
