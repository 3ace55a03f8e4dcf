package mapping

import (
	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/SscSPs/investor_onboarding_app/internal/models"
)

func ToModelAccreditation(d domain.Accreditation) models.Accreditation {
	return models.Accreditation{
		AccreditationID:   d.AccreditationID,
		ProfileID:         d.ProfileID,
		AccreditationType: int(d.AccreditationType),
		LicenseNumber:     d.LicenseNumber,
		StateLicenseHeld:  d.StateLicenseHeld,
		ReviewStatus:      string(d.ReviewStatus),
		IsVerified:        d.IsVerified,
		VerificationDate:  d.VerificationDate,
		VerifiedBy:        d.VerifiedBy,
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccreditation converts a model Accreditation. Documents are attached by the caller.
func ToDomainAccreditation(m models.Accreditation) domain.Accreditation {
	return domain.Accreditation{
		AccreditationID:   m.AccreditationID,
		ProfileID:         m.ProfileID,
		AccreditationType: domain.AccreditationType(m.AccreditationType),
		LicenseNumber:     m.LicenseNumber,
		StateLicenseHeld:  m.StateLicenseHeld,
		ReviewStatus:      domain.ReviewStatus(m.ReviewStatus),
		IsVerified:        m.IsVerified,
		VerificationDate:  m.VerificationDate,
		VerifiedBy:        m.VerifiedBy,
		Notes:             m.Notes,
		Documents:         []domain.AccreditationDocument{},
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelAccreditationDocument(d domain.AccreditationDocument) models.AccreditationDocument {
	return models.AccreditationDocument{
		DocumentID:      d.DocumentID,
		AccreditationID: d.AccreditationID,
		DocumentType:    d.DocumentType,
		StoragePath:     d.StoragePath,
		FileSize:        d.FileSize,
		ContentType:     d.ContentType,
		UploadDate:      d.UploadDate,
		UploadedBy:      d.UploadedBy,
	}
}

func ToDomainAccreditationDocument(m models.AccreditationDocument) domain.AccreditationDocument {
	return domain.AccreditationDocument{
		DocumentID:      m.DocumentID,
		AccreditationID: m.AccreditationID,
		DocumentType:    m.DocumentType,
		StoragePath:     m.StoragePath,
		FileSize:        m.FileSize,
		ContentType:     m.ContentType,
		UploadDate:      m.UploadDate,
		UploadedBy:      m.UploadedBy,
	}
}
