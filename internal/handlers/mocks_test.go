package handlers_test

import (
	"context"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	portssvc "github.com/SscSPs/investor_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock InvestorTypeService ---
type MockInvestorTypeService struct {
	mock.Mock
}

func (m *MockInvestorTypeService) SelectType(ctx context.Context, req dto.SelectInvestorTypeRequest, userID string) (*domain.InvestorProfile, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestorProfile), args.Error(1)
}
func (m *MockInvestorTypeService) GetProfile(ctx context.Context, profileID string) (*domain.InvestorProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestorProfile), args.Error(1)
}
func (m *MockInvestorTypeService) GetProfileByUser(ctx context.Context, userID string) (*domain.InvestorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestorProfile), args.Error(1)
}
func (m *MockInvestorTypeService) UpdateAccreditationFlag(ctx context.Context, profileID string, req dto.UpdateAccreditationStatusRequest, userID string) (*domain.InvestorProfile, error) {
	args := m.Called(ctx, profileID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestorProfile), args.Error(1)
}

var _ portssvc.InvestorTypeSvcFacade = (*MockInvestorTypeService)(nil)

// --- Mock GeneralInfoService ---
type MockGeneralInfoService struct {
	mock.Mock
}

func (m *MockGeneralInfoService) GetByProfileID(ctx context.Context, profileID string) (*domain.GeneralInfo, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralInfo), args.Error(1)
}
func (m *MockGeneralInfoService) SaveGeneralInfo(ctx context.Context, profileID string, req dto.SaveGeneralInfoRequest, userID string) (*domain.GeneralInfo, error) {
	args := m.Called(ctx, profileID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralInfo), args.Error(1)
}
func (m *MockGeneralInfoService) AddChildRecord(ctx context.Context, generalInfoID string, req dto.AddPartyRequest, userID string) (*domain.GeneralInfoParty, error) {
	args := m.Called(ctx, generalInfoID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralInfoParty), args.Error(1)
}

var _ portssvc.GeneralInfoSvcFacade = (*MockGeneralInfoService)(nil)

// --- Mock BeneficiaryService ---
type MockBeneficiaryService struct {
	mock.Mock
}

func (m *MockBeneficiaryService) GetGrouped(ctx context.Context, profileID string) (*domain.BeneficiaryAllocation, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BeneficiaryAllocation), args.Error(1)
}
func (m *MockBeneficiaryService) AddSingle(ctx context.Context, profileID string, req dto.BeneficiaryRequest, userID string) (*domain.Beneficiary, error) {
	args := m.Called(ctx, profileID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Beneficiary), args.Error(1)
}
func (m *MockBeneficiaryService) ReplaceByType(ctx context.Context, profileID string, req dto.ReplaceBeneficiariesRequest, userID string) ([]domain.Beneficiary, error) {
	args := m.Called(ctx, profileID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Beneficiary), args.Error(1)
}
func (m *MockBeneficiaryService) Update(ctx context.Context, beneficiaryID string, req dto.UpdateBeneficiaryRequest, userID string) (*domain.Beneficiary, error) {
	args := m.Called(ctx, beneficiaryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Beneficiary), args.Error(1)
}
func (m *MockBeneficiaryService) Delete(ctx context.Context, beneficiaryID string, userID string) error {
	args := m.Called(ctx, beneficiaryID, userID)
	return args.Error(0)
}

var _ portssvc.BeneficiarySvcFacade = (*MockBeneficiaryService)(nil)

// --- Mock AccreditationService ---
type MockAccreditationService struct {
	mock.Mock
}

func (m *MockAccreditationService) Get(ctx context.Context, profileID string) (*domain.Accreditation, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Accreditation), args.Error(1)
}
func (m *MockAccreditationService) Save(ctx context.Context, profileID string, req dto.SaveAccreditationRequest, userID string) (*domain.Accreditation, error) {
	args := m.Called(ctx, profileID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Accreditation), args.Error(1)
}
func (m *MockAccreditationService) UploadDocument(ctx context.Context, accreditationID string, req dto.UploadDocumentRequest, userID string) (*domain.AccreditationDocument, error) {
	args := m.Called(ctx, accreditationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccreditationDocument), args.Error(1)
}
func (m *MockAccreditationService) Verify(ctx context.Context, accreditationID string, req dto.VerifyAccreditationRequest, verifierID string) (*domain.Accreditation, error) {
	args := m.Called(ctx, accreditationID, req, verifierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Accreditation), args.Error(1)
}
func (m *MockAccreditationService) DeleteDocument(ctx context.Context, documentID string, userID string) error {
	args := m.Called(ctx, documentID, userID)
	return args.Error(0)
}

var _ portssvc.AccreditationSvcFacade = (*MockAccreditationService)(nil)
