package services

import (
	"context"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
)

// GeneralInfoReaderSvc defines read operations for general info
type GeneralInfoReaderSvc interface {
	// GetByProfileID loads the general info of a profile, dispatching on its investor type.
	GetByProfileID(ctx context.Context, profileID string) (*domain.GeneralInfo, error)
}

// GeneralInfoWriterSvc defines write operations for general info and its child records
type GeneralInfoWriterSvc interface {
	// SaveGeneralInfo creates or updates the general info for a profile.
	SaveGeneralInfo(ctx context.Context, profileID string, req dto.SaveGeneralInfoRequest, userID string) (*domain.GeneralInfo, error)

	// AddChildRecord adds a joint account holder, trust grantor or entity equity owner.
	AddChildRecord(ctx context.Context, generalInfoID string, req dto.AddPartyRequest, userID string) (*domain.GeneralInfoParty, error)
}

// GeneralInfoSvcFacade combines all general-info service interfaces
type GeneralInfoSvcFacade interface {
	GeneralInfoReaderSvc
	GeneralInfoWriterSvc
}
