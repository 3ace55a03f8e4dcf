package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a live transaction. Repositories are mocked, so none of its methods run.
type fakeTx struct {
	pgx.Tx
}

// expectCommittedTx primes m for one transaction that commits.
func expectCommittedTx(m *mock.Mock, tx pgx.Tx) {
	m.On("Begin", mock.Anything).Return(tx, nil).Once()
	m.On("Commit", mock.Anything, tx).Return(nil).Once()
	m.On("Rollback", mock.Anything, tx).Return(nil).Maybe()
}

// expectRolledBackTx primes m for one transaction that must not commit.
func expectRolledBackTx(m *mock.Mock, tx pgx.Tx) {
	m.On("Begin", mock.Anything).Return(tx, nil).Once()
	m.On("Rollback", mock.Anything, tx).Return(nil).Once()
}

type txMock struct {
	mock.Mock
}

func (m *txMock) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *txMock) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *txMock) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	txMock
}

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.InvestorProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestorProfile), args.Error(1)
}

func (m *MockProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.InvestorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestorProfile), args.Error(1)
}

func (m *MockProfileRepository) UpdateAccreditationClaim(ctx context.Context, profile domain.InvestorProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) RaiseCompletion(ctx context.Context, profileID string, floor int, userID string, now time.Time) error {
	return m.Called(ctx, profileID, floor, userID, now).Error(0)
}

func (m *MockProfileRepository) SaveProfileWithDetailInTx(ctx context.Context, tx pgx.Tx, profile domain.InvestorProfile, detail domain.TypeSpecificDetail) error {
	return m.Called(ctx, tx, profile, detail).Error(0)
}

func (m *MockProfileRepository) FindProfileByIDForUpdate(ctx context.Context, tx pgx.Tx, profileID string) (*domain.InvestorProfile, error) {
	args := m.Called(ctx, tx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestorProfile), args.Error(1)
}

func (m *MockProfileRepository) RaiseCompletionInTx(ctx context.Context, tx pgx.Tx, profileID string, floor int, userID string, now time.Time) error {
	return m.Called(ctx, tx, profileID, floor, userID, now).Error(0)
}

// --- Mock GeneralInfoRepository ---
type MockGeneralInfoRepository struct {
	txMock
}

func (m *MockGeneralInfoRepository) FindGeneralInfoByDetailID(ctx context.Context, detailID string) (*domain.GeneralInfo, error) {
	args := m.Called(ctx, detailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralInfo), args.Error(1)
}

func (m *MockGeneralInfoRepository) FindGeneralInfoByID(ctx context.Context, generalInfoID string) (*domain.GeneralInfo, error) {
	args := m.Called(ctx, generalInfoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralInfo), args.Error(1)
}

func (m *MockGeneralInfoRepository) UpsertGeneralInfo(ctx context.Context, info domain.GeneralInfo) (*domain.GeneralInfo, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralInfo), args.Error(1)
}

func (m *MockGeneralInfoRepository) FindGeneralInfoByIDForUpdate(ctx context.Context, tx pgx.Tx, generalInfoID string) (*domain.GeneralInfo, error) {
	args := m.Called(ctx, tx, generalInfoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralInfo), args.Error(1)
}

func (m *MockGeneralInfoRepository) SavePartyInTx(ctx context.Context, tx pgx.Tx, party domain.GeneralInfoParty) error {
	return m.Called(ctx, tx, party).Error(0)
}

// --- Mock BeneficiaryRepository ---
type MockBeneficiaryRepository struct {
	txMock
}

func (m *MockBeneficiaryRepository) FindBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error) {
	args := m.Called(ctx, beneficiaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) ListBeneficiariesByProfileID(ctx context.Context, profileID string) ([]domain.Beneficiary, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) FindBeneficiaryByIDForUpdate(ctx context.Context, tx pgx.Tx, beneficiaryID string) (*domain.Beneficiary, error) {
	args := m.Called(ctx, tx, beneficiaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) SumPercentagesInTx(ctx context.Context, tx pgx.Tx, profileID string, beneficiaryType domain.BeneficiaryType, excludeID string) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, profileID, beneficiaryType, excludeID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBeneficiaryRepository) SaveBeneficiariesInTx(ctx context.Context, tx pgx.Tx, beneficiaries []domain.Beneficiary) error {
	return m.Called(ctx, tx, beneficiaries).Error(0)
}

func (m *MockBeneficiaryRepository) UpdateBeneficiaryInTx(ctx context.Context, tx pgx.Tx, beneficiary domain.Beneficiary) error {
	return m.Called(ctx, tx, beneficiary).Error(0)
}

func (m *MockBeneficiaryRepository) DeleteBeneficiaryInTx(ctx context.Context, tx pgx.Tx, beneficiaryID string) error {
	return m.Called(ctx, tx, beneficiaryID).Error(0)
}

func (m *MockBeneficiaryRepository) DeleteBeneficiariesByTypesInTx(ctx context.Context, tx pgx.Tx, profileID string, types []domain.BeneficiaryType) (int64, error) {
	args := m.Called(ctx, tx, profileID, types)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock AccreditationRepository ---
type MockAccreditationRepository struct {
	txMock
}

func (m *MockAccreditationRepository) FindAccreditationByID(ctx context.Context, accreditationID string) (*domain.Accreditation, error) {
	args := m.Called(ctx, accreditationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Accreditation), args.Error(1)
}

func (m *MockAccreditationRepository) FindAccreditationByProfileID(ctx context.Context, profileID string) (*domain.Accreditation, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Accreditation), args.Error(1)
}

func (m *MockAccreditationRepository) UpdateVerification(ctx context.Context, accreditation domain.Accreditation) error {
	return m.Called(ctx, accreditation).Error(0)
}

func (m *MockAccreditationRepository) SaveDocument(ctx context.Context, document domain.AccreditationDocument) error {
	return m.Called(ctx, document).Error(0)
}

func (m *MockAccreditationRepository) DeleteDocument(ctx context.Context, documentID string) error {
	return m.Called(ctx, documentID).Error(0)
}

func (m *MockAccreditationRepository) UpsertAccreditationInTx(ctx context.Context, tx pgx.Tx, accreditation domain.Accreditation) (*domain.Accreditation, error) {
	args := m.Called(ctx, tx, accreditation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Accreditation), args.Error(1)
}
