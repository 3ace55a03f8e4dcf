package models

import "time"

// Accreditation is a row of investor_accreditations.
type Accreditation struct {
	AccreditationID   string     `db:"accreditation_id"`
	ProfileID         string     `db:"profile_id"`
	AccreditationType int        `db:"accreditation_type"`
	LicenseNumber     *string    `db:"license_number"`
	StateLicenseHeld  *string    `db:"state_license_held"`
	ReviewStatus      string     `db:"review_status"`
	IsVerified        bool       `db:"is_verified"`
	VerificationDate  *time.Time `db:"verification_date"`
	VerifiedBy        *string    `db:"verified_by"`
	Notes             *string    `db:"notes"`
	AuditFields
}

// AccreditationDocument is a row of accreditation_documents.
type AccreditationDocument struct {
	DocumentID      string    `db:"document_id"`
	AccreditationID string    `db:"accreditation_id"`
	DocumentType    string    `db:"document_type"`
	StoragePath     string    `db:"storage_path"`
	FileSize        int64     `db:"file_size"`
	ContentType     string    `db:"content_type"`
	UploadDate      time.Time `db:"upload_date"`
	UploadedBy      string    `db:"uploaded_by"`
}
