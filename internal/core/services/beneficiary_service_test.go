package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/investor_onboarding_app/internal/apperrors"
	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	portssvc "github.com/SscSPs/investor_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/investor_onboarding_app/internal/core/services"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BeneficiaryServiceTestSuite struct {
	suite.Suite
	profileRepo     *MockProfileRepository
	beneficiaryRepo *MockBeneficiaryRepository
	service         portssvc.BeneficiarySvcFacade
	tx              *fakeTx
	ctx             context.Context
	profileID       string
	userID          string
}

func TestBeneficiaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BeneficiaryServiceTestSuite))
}

func (s *BeneficiaryServiceTestSuite) SetupTest() {
	s.profileRepo = new(MockProfileRepository)
	s.beneficiaryRepo = new(MockBeneficiaryRepository)
	s.service = services.NewBeneficiaryService(s.profileRepo, s.beneficiaryRepo)
	s.tx = &fakeTx{}
	s.ctx = context.Background()
	s.profileID = uuid.NewString()
	s.userID = uuid.NewString()
}

func (s *BeneficiaryServiceTestSuite) TearDownTest() {
	s.profileRepo.AssertExpectations(s.T())
	s.beneficiaryRepo.AssertExpectations(s.T())
}

func pct(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func beneficiaryReq(t domain.BeneficiaryType, percentage string) dto.BeneficiaryRequest {
	return dto.BeneficiaryRequest{
		BeneficiaryType:     t,
		FirstName:           "Ada",
		LastName:            "Lovelace",
		Relationship:        "Child",
		PercentageOfBenefit: pct(percentage),
	}
}

func (s *BeneficiaryServiceTestSuite) expectProfileLock() {
	s.profileRepo.On("FindProfileByIDForUpdate", s.ctx, s.tx, s.profileID).
		Return(&domain.InvestorProfile{ProfileID: s.profileID}, nil).Once()
}

func (s *BeneficiaryServiceTestSuite) TestAddSingle_WithinCap() {
	expectCommittedTx(&s.beneficiaryRepo.Mock, s.tx)
	s.expectProfileLock()
	s.beneficiaryRepo.On("SumPercentagesInTx", s.ctx, s.tx, s.profileID, domain.BeneficiaryPrimary, "").
		Return(pct("60"), nil).Once()
	s.beneficiaryRepo.On("SaveBeneficiariesInTx", s.ctx, s.tx, mock.MatchedBy(func(bs []domain.Beneficiary) bool {
		return len(bs) == 1 && bs[0].PercentageOfBenefit.Equal(pct("30")) && bs[0].ProfileID == s.profileID && bs[0].CreatedBy == s.userID
	})).Return(nil).Once()

	b, err := s.service.AddSingle(s.ctx, s.profileID, beneficiaryReq(domain.BeneficiaryPrimary, "30"), s.userID)

	s.Require().NoError(err)
	s.NotEmpty(b.BeneficiaryID)
	s.Equal(domain.BeneficiaryPrimary, b.BeneficiaryType)
	s.profileRepo.AssertNotCalled(s.T(), "RaiseCompletionInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *BeneficiaryServiceTestSuite) TestAddSingle_ExceedingCapIsRejected() {
	// 60 + 30 is allowed, another 15 would make 105.
	expectRolledBackTx(&s.beneficiaryRepo.Mock, s.tx)
	s.expectProfileLock()
	s.beneficiaryRepo.On("SumPercentagesInTx", s.ctx, s.tx, s.profileID, domain.BeneficiaryPrimary, "").
		Return(pct("90"), nil).Once()

	b, err := s.service.AddSingle(s.ctx, s.profileID, beneficiaryReq(domain.BeneficiaryPrimary, "15"), s.userID)

	s.Nil(b)
	s.ErrorIs(err, apperrors.ErrBusinessRule)
	s.Equal(apperrors.KindBusinessRule, apperrors.KindOf(err))
	s.beneficiaryRepo.AssertNotCalled(s.T(), "SaveBeneficiariesInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BeneficiaryServiceTestSuite) TestAddSingle_ReachingFullAllocationRaisesCompletion() {
	expectCommittedTx(&s.beneficiaryRepo.Mock, s.tx)
	s.expectProfileLock()
	s.beneficiaryRepo.On("SumPercentagesInTx", s.ctx, s.tx, s.profileID, domain.BeneficiaryPrimary, "").
		Return(pct("60"), nil).Once()
	s.beneficiaryRepo.On("SaveBeneficiariesInTx", s.ctx, s.tx, mock.Anything).Return(nil).Once()
	s.profileRepo.On("RaiseCompletionInTx", s.ctx, s.tx, s.profileID, domain.CompletionBeneficiaries, s.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	_, err := s.service.AddSingle(s.ctx, s.profileID, beneficiaryReq(domain.BeneficiaryPrimary, "40"), s.userID)

	s.Require().NoError(err)
}

func (s *BeneficiaryServiceTestSuite) TestAddSingle_ContingentDoesNotCountAgainstPrimary() {
	expectCommittedTx(&s.beneficiaryRepo.Mock, s.tx)
	s.expectProfileLock()
	s.beneficiaryRepo.On("SumPercentagesInTx", s.ctx, s.tx, s.profileID, domain.BeneficiaryContingent, "").
		Return(decimal.Zero, nil).Once()
	s.beneficiaryRepo.On("SaveBeneficiariesInTx", s.ctx, s.tx, mock.Anything).Return(nil).Once()

	_, err := s.service.AddSingle(s.ctx, s.profileID, beneficiaryReq(domain.BeneficiaryContingent, "100"), s.userID)

	s.Require().NoError(err)
}

func (s *BeneficiaryServiceTestSuite) TestAddSingle_InvalidPercentage() {
	tests := []string{"-0.01", "-5", "100.01", "33.333"}
	for _, p := range tests {
		s.Run(p, func() {
			s.SetupTest()
			expectRolledBackTx(&s.beneficiaryRepo.Mock, s.tx)
			s.expectProfileLock()

			_, err := s.service.AddSingle(s.ctx, s.profileID, beneficiaryReq(domain.BeneficiaryPrimary, p), s.userID)

			s.ErrorIs(err, apperrors.ErrValidation)
			s.beneficiaryRepo.AssertNotCalled(s.T(), "SumPercentagesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			s.TearDownTest()
		})
	}
}

func (s *BeneficiaryServiceTestSuite) TestAddSingle_UnknownProfile() {
	expectRolledBackTx(&s.beneficiaryRepo.Mock, s.tx)
	s.profileRepo.On("FindProfileByIDForUpdate", s.ctx, s.tx, s.profileID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.AddSingle(s.ctx, s.profileID, beneficiaryReq(domain.BeneficiaryPrimary, "10"), s.userID)

	s.Equal(apperrors.KindNotFound, apperrors.KindOf(err))
}

func (s *BeneficiaryServiceTestSuite) TestAddSingle_CancelledContextOpensNoTransaction() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.service.AddSingle(ctx, s.profileID, beneficiaryReq(domain.BeneficiaryPrimary, "10"), s.userID)

	s.ErrorIs(err, context.Canceled)
	s.beneficiaryRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *BeneficiaryServiceTestSuite) TestReplaceByType_ExactTotalsReplaceAtomically() {
	req := dto.ReplaceBeneficiariesRequest{Beneficiaries: []dto.BeneficiaryRequest{
		beneficiaryReq(domain.BeneficiaryPrimary, "50"),
		beneficiaryReq(domain.BeneficiaryPrimary, "50"),
		beneficiaryReq(domain.BeneficiaryContingent, "100"),
	}}

	expectCommittedTx(&s.beneficiaryRepo.Mock, s.tx)
	s.expectProfileLock()
	s.beneficiaryRepo.On("DeleteBeneficiariesByTypesInTx", s.ctx, s.tx, s.profileID,
		[]domain.BeneficiaryType{domain.BeneficiaryPrimary, domain.BeneficiaryContingent}).
		Return(int64(2), nil).Once()
	s.beneficiaryRepo.On("SaveBeneficiariesInTx", s.ctx, s.tx, mock.MatchedBy(func(bs []domain.Beneficiary) bool {
		return len(bs) == 3
	})).Return(nil).Once()
	s.profileRepo.On("RaiseCompletionInTx", s.ctx, s.tx, s.profileID, domain.CompletionBeneficiaries, s.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	saved, err := s.service.ReplaceByType(s.ctx, s.profileID, req, s.userID)

	s.Require().NoError(err)
	s.Len(saved, 3)
}

func (s *BeneficiaryServiceTestSuite) TestReplaceByType_OnlyTouchesTypesInBatch() {
	req := dto.ReplaceBeneficiariesRequest{Beneficiaries: []dto.BeneficiaryRequest{
		beneficiaryReq(domain.BeneficiaryContingent, "100"),
	}}

	expectCommittedTx(&s.beneficiaryRepo.Mock, s.tx)
	s.expectProfileLock()
	s.beneficiaryRepo.On("DeleteBeneficiariesByTypesInTx", s.ctx, s.tx, s.profileID,
		[]domain.BeneficiaryType{domain.BeneficiaryContingent}).
		Return(int64(0), nil).Once()
	s.beneficiaryRepo.On("SaveBeneficiariesInTx", s.ctx, s.tx, mock.Anything).Return(nil).Once()

	_, err := s.service.ReplaceByType(s.ctx, s.profileID, req, s.userID)

	s.Require().NoError(err)
}

func (s *BeneficiaryServiceTestSuite) TestReplaceByType_InexactTotalDeletesNothing() {
	tests := []struct {
		name  string
		split []string
	}{
		{"under", []string{"50", "49"}},
		{"over", []string{"50", "51"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			req := dto.ReplaceBeneficiariesRequest{}
			for _, p := range tt.split {
				req.Beneficiaries = append(req.Beneficiaries, beneficiaryReq(domain.BeneficiaryPrimary, p))
			}
			expectRolledBackTx(&s.beneficiaryRepo.Mock, s.tx)
			s.expectProfileLock()

			saved, err := s.service.ReplaceByType(s.ctx, s.profileID, req, s.userID)

			s.Nil(saved)
			s.ErrorIs(err, apperrors.ErrBusinessRule)
			s.beneficiaryRepo.AssertNotCalled(s.T(), "DeleteBeneficiariesByTypesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			s.beneficiaryRepo.AssertNotCalled(s.T(), "SaveBeneficiariesInTx", mock.Anything, mock.Anything, mock.Anything)
			s.TearDownTest()
		})
	}
}

func (s *BeneficiaryServiceTestSuite) TestReplaceByType_InsertFailureRollsBack() {
	req := dto.ReplaceBeneficiariesRequest{Beneficiaries: []dto.BeneficiaryRequest{
		beneficiaryReq(domain.BeneficiaryPrimary, "100"),
	}}

	expectRolledBackTx(&s.beneficiaryRepo.Mock, s.tx)
	s.expectProfileLock()
	s.beneficiaryRepo.On("DeleteBeneficiariesByTypesInTx", s.ctx, s.tx, s.profileID, mock.Anything).
		Return(int64(3), nil).Once()
	s.beneficiaryRepo.On("SaveBeneficiariesInTx", s.ctx, s.tx, mock.Anything).Return(assert.AnError).Once()

	_, err := s.service.ReplaceByType(s.ctx, s.profileID, req, s.userID)

	s.ErrorIs(err, assert.AnError)
	s.Equal(apperrors.KindInternal, apperrors.KindOf(err))
}

func (s *BeneficiaryServiceTestSuite) TestUpdate_ExcludesItselfFromTotal() {
	id := uuid.NewString()
	existing := &domain.Beneficiary{
		BeneficiaryID: id, ProfileID: s.profileID, BeneficiaryType: domain.BeneficiaryPrimary,
		FirstName: "Ada", LastName: "Lovelace", Relationship: "Child", PercentageOfBenefit: pct("60"),
	}
	req := dto.UpdateBeneficiaryRequest{FirstName: "Ada", LastName: "Lovelace", Relationship: "Child", PercentageOfBenefit: pct("70")}

	s.beneficiaryRepo.On("FindBeneficiaryByID", s.ctx, id).Return(existing, nil).Once()
	expectCommittedTx(&s.beneficiaryRepo.Mock, s.tx)
	s.expectProfileLock()
	lockedCopy := *existing
	s.beneficiaryRepo.On("FindBeneficiaryByIDForUpdate", s.ctx, s.tx, id).Return(&lockedCopy, nil).Once()
	s.beneficiaryRepo.On("SumPercentagesInTx", s.ctx, s.tx, s.profileID, domain.BeneficiaryPrimary, id).
		Return(pct("30"), nil).Once()
	s.beneficiaryRepo.On("UpdateBeneficiaryInTx", s.ctx, s.tx, mock.MatchedBy(func(b domain.Beneficiary) bool {
		return b.BeneficiaryID == id && b.PercentageOfBenefit.Equal(pct("70")) && b.LastUpdatedBy == s.userID
	})).Return(nil).Once()
	s.profileRepo.On("RaiseCompletionInTx", s.ctx, s.tx, s.profileID, domain.CompletionBeneficiaries, s.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	updated, err := s.service.Update(s.ctx, id, req, s.userID)

	s.Require().NoError(err)
	s.True(updated.PercentageOfBenefit.Equal(pct("70")))
}

func (s *BeneficiaryServiceTestSuite) TestUpdate_ExceedingCapIsRejected() {
	id := uuid.NewString()
	existing := &domain.Beneficiary{
		BeneficiaryID: id, ProfileID: s.profileID, BeneficiaryType: domain.BeneficiaryPrimary,
		FirstName: "Ada", LastName: "Lovelace", Relationship: "Child", PercentageOfBenefit: pct("30"),
	}
	req := dto.UpdateBeneficiaryRequest{FirstName: "Ada", LastName: "Lovelace", Relationship: "Child", PercentageOfBenefit: pct("50")}

	s.beneficiaryRepo.On("FindBeneficiaryByID", s.ctx, id).Return(existing, nil).Once()
	expectRolledBackTx(&s.beneficiaryRepo.Mock, s.tx)
	s.expectProfileLock()
	lockedCopy := *existing
	s.beneficiaryRepo.On("FindBeneficiaryByIDForUpdate", s.ctx, s.tx, id).Return(&lockedCopy, nil).Once()
	s.beneficiaryRepo.On("SumPercentagesInTx", s.ctx, s.tx, s.profileID, domain.BeneficiaryPrimary, id).
		Return(pct("60"), nil).Once()

	_, err := s.service.Update(s.ctx, id, req, s.userID)

	s.ErrorIs(err, apperrors.ErrBusinessRule)
	s.beneficiaryRepo.AssertNotCalled(s.T(), "UpdateBeneficiaryInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BeneficiaryServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.NewString()
	s.beneficiaryRepo.On("FindBeneficiaryByID", s.ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.Update(s.ctx, id, dto.UpdateBeneficiaryRequest{}, s.userID)

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *BeneficiaryServiceTestSuite) TestDelete_LeavesRemainingAllocationAsIs() {
	id := uuid.NewString()
	existing := &domain.Beneficiary{BeneficiaryID: id, ProfileID: s.profileID, BeneficiaryType: domain.BeneficiaryPrimary, PercentageOfBenefit: pct("40")}

	s.beneficiaryRepo.On("FindBeneficiaryByID", s.ctx, id).Return(existing, nil).Once()
	expectCommittedTx(&s.beneficiaryRepo.Mock, s.tx)
	s.expectProfileLock()
	s.beneficiaryRepo.On("DeleteBeneficiaryInTx", s.ctx, s.tx, id).Return(nil).Once()
	s.beneficiaryRepo.On("SumPercentagesInTx", s.ctx, s.tx, s.profileID, domain.BeneficiaryPrimary, "").
		Return(pct("60"), nil).Once()

	s.Require().NoError(s.service.Delete(s.ctx, id, s.userID))
}

func (s *BeneficiaryServiceTestSuite) TestGetGrouped_ReportsPartialTotals() {
	list := []domain.Beneficiary{
		{BeneficiaryID: "a", BeneficiaryType: domain.BeneficiaryPrimary, PercentageOfBenefit: pct("20")},
		{BeneficiaryID: "b", BeneficiaryType: domain.BeneficiaryPrimary, PercentageOfBenefit: pct("40")},
		{BeneficiaryID: "c", BeneficiaryType: domain.BeneficiaryContingent, PercentageOfBenefit: pct("100")},
	}
	s.profileRepo.On("FindProfileByID", s.ctx, s.profileID).Return(&domain.InvestorProfile{ProfileID: s.profileID}, nil).Once()
	s.beneficiaryRepo.On("ListBeneficiariesByProfileID", s.ctx, s.profileID).Return(list, nil).Once()

	alloc, err := s.service.GetGrouped(s.ctx, s.profileID)

	s.Require().NoError(err)
	s.True(alloc.PrimaryTotal.Equal(pct("60")))
	s.True(alloc.ContingentTotal.Equal(pct("100")))
	s.False(alloc.IsComplete())
	s.Require().Len(alloc.Primary, 2)
	s.Equal("b", alloc.Primary[0].BeneficiaryID)
}

func (s *BeneficiaryServiceTestSuite) TestGetGrouped_UnknownProfile() {
	s.profileRepo.On("FindProfileByID", s.ctx, s.profileID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetGrouped(s.ctx, s.profileID)

	s.ErrorIs(err, apperrors.ErrNotFound)
}
