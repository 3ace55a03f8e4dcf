package dto

import (
	"time"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
)

// SaveAccreditationRequest submits or resubmits a profile's accreditation.
// LicenseNumber and StateLicenseHeld are required for SERIES_7/65/82 (types 3-5).
type SaveAccreditationRequest struct {
	AccreditationType domain.AccreditationType `json:"accreditationType" example:"3"`
	LicenseNumber     *string                  `json:"licenseNumber"`
	StateLicenseHeld  *string                  `json:"stateLicenseHeld"`
}

// UploadDocumentRequest records a document the storage service has already persisted.
type UploadDocumentRequest struct {
	DocumentType string `json:"documentType" binding:"required"`
	StoragePath  string `json:"storagePath" binding:"required"`
	FileSize     int64  `json:"fileSize" binding:"required,gt=0"`
	ContentType  string `json:"contentType" binding:"required"`
}

// VerifyAccreditationRequest records a reviewer's decision.
type VerifyAccreditationRequest struct {
	Approved *bool   `json:"approved" binding:"required"`
	Notes    *string `json:"notes"`
}

type AccreditationDocumentResponse struct {
	DocumentID      string    `json:"documentID"`
	AccreditationID string    `json:"accreditationID"`
	DocumentType    string    `json:"documentType"`
	StoragePath     string    `json:"storagePath"`
	FileSize        int64     `json:"fileSize"`
	ContentType     string    `json:"contentType"`
	UploadDate      time.Time `json:"uploadDate"`
}

type AccreditationResponse struct {
	AccreditationID   string                          `json:"accreditationID"`
	ProfileID         string                          `json:"profileID"`
	AccreditationType domain.AccreditationType        `json:"accreditationType"`
	AccreditationName string                          `json:"accreditationName"`
	LicenseNumber     *string                         `json:"licenseNumber,omitempty"`
	StateLicenseHeld  *string                         `json:"stateLicenseHeld,omitempty"`
	ReviewStatus      domain.ReviewStatus             `json:"reviewStatus"`
	IsVerified        bool                            `json:"isVerified"`
	VerificationDate  *time.Time                      `json:"verificationDate"`
	VerifiedBy        *string                         `json:"verifiedBy"`
	Notes             *string                         `json:"notes,omitempty"`
	Documents         []AccreditationDocumentResponse `json:"documents"`
	CreatedAt         time.Time                       `json:"createdAt"`
	LastUpdatedAt     time.Time                       `json:"lastUpdatedAt"`
}

func ToAccreditationDocumentResponse(d *domain.AccreditationDocument) AccreditationDocumentResponse {
	return AccreditationDocumentResponse{
		DocumentID:      d.DocumentID,
		AccreditationID: d.AccreditationID,
		DocumentType:    d.DocumentType,
		StoragePath:     d.StoragePath,
		FileSize:        d.FileSize,
		ContentType:     d.ContentType,
		UploadDate:      d.UploadDate,
	}
}

func ToAccreditationResponse(a *domain.Accreditation) AccreditationResponse {
	docs := make([]AccreditationDocumentResponse, len(a.Documents))
	for i := range a.Documents {
		docs[i] = ToAccreditationDocumentResponse(&a.Documents[i])
	}
	return AccreditationResponse{
		AccreditationID:   a.AccreditationID,
		ProfileID:         a.ProfileID,
		AccreditationType: a.AccreditationType,
		AccreditationName: a.AccreditationType.String(),
		LicenseNumber:     a.LicenseNumber,
		StateLicenseHeld:  a.StateLicenseHeld,
		ReviewStatus:      a.ReviewStatus,
		IsVerified:        a.IsVerified,
		VerificationDate:  a.VerificationDate,
		VerifiedBy:        a.VerifiedBy,
		Notes:             a.Notes,
		Documents:         docs,
		CreatedAt:         a.CreatedAt,
		LastUpdatedAt:     a.LastUpdatedAt,
	}
}
