package domain_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/investor_onboarding_app/internal/apperrors"
	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func beneficiary(t domain.BeneficiaryType, p string) domain.Beneficiary {
	return domain.Beneficiary{
		BeneficiaryType:     t,
		FirstName:           "Ada",
		LastName:            "Lovelace",
		Relationship:        "Child",
		PercentageOfBenefit: pct(p),
	}
}

func TestValidatePercentage(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "whole number", value: "60"},
		{name: "two decimal places", value: "33.33"},
		{name: "upper bound", value: "100"},
		{name: "lower bound", value: "0"},
		{name: "negative", value: "-5", wantErr: true},
		{name: "smallest negative", value: "-0.01", wantErr: true},
		{name: "over 100", value: "100.01", wantErr: true},
		{name: "three decimal places", value: "33.333", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidatePercentage(pct(tt.value), "percentageOfBenefit")
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExceedsCap(t *testing.T) {
	assert.False(t, domain.ExceedsCap(pct("60"), pct("30")))
	assert.False(t, domain.ExceedsCap(pct("90"), pct("10")))
	assert.True(t, domain.ExceedsCap(pct("90"), pct("15")))
	assert.True(t, domain.ExceedsCap(pct("99.99"), pct("0.02")))
}

func TestBeneficiary_Validate(t *testing.T) {
	b := beneficiary("SPOUSE", "50")
	assert.ErrorIs(t, b.Validate(), apperrors.ErrValidation)

	b = beneficiary(domain.BeneficiaryPrimary, "50")
	b.Relationship = "  "
	assert.ErrorIs(t, b.Validate(), apperrors.ErrValidation)

	b = beneficiary(domain.BeneficiaryContingent, "50")
	assert.NoError(t, b.Validate())
}

func TestGroupBeneficiaries(t *testing.T) {
	alloc := domain.GroupBeneficiaries([]domain.Beneficiary{
		beneficiary(domain.BeneficiaryPrimary, "25"),
		beneficiary(domain.BeneficiaryContingent, "100"),
		beneficiary(domain.BeneficiaryPrimary, "35"),
	})

	require.Len(t, alloc.Primary, 2)
	assert.True(t, alloc.Primary[0].PercentageOfBenefit.Equal(pct("35")))
	assert.True(t, alloc.Primary[1].PercentageOfBenefit.Equal(pct("25")))
	assert.True(t, alloc.PrimaryTotal.Equal(pct("60")))
	require.Len(t, alloc.Contingent, 1)
	assert.True(t, alloc.ContingentTotal.Equal(pct("100")))
	assert.False(t, alloc.IsComplete())
}

func TestGroupBeneficiaries_Empty(t *testing.T) {
	alloc := domain.GroupBeneficiaries(nil)
	assert.NotNil(t, alloc.Primary)
	assert.NotNil(t, alloc.Contingent)
	assert.True(t, alloc.PrimaryTotal.IsZero())
	assert.True(t, alloc.ContingentTotal.IsZero())
}

func TestValidateReplacementBatch(t *testing.T) {
	tests := []struct {
		name      string
		items     []domain.Beneficiary
		wantTypes []domain.BeneficiaryType
		wantErr   error
	}{
		{
			name: "primary totals exactly 100",
			items: []domain.Beneficiary{
				beneficiary(domain.BeneficiaryPrimary, "50"),
				beneficiary(domain.BeneficiaryPrimary, "50"),
			},
			wantTypes: []domain.BeneficiaryType{domain.BeneficiaryPrimary},
		},
		{
			name: "both types each total 100",
			items: []domain.Beneficiary{
				beneficiary(domain.BeneficiaryContingent, "100"),
				beneficiary(domain.BeneficiaryPrimary, "33.34"),
				beneficiary(domain.BeneficiaryPrimary, "66.66"),
			},
			wantTypes: []domain.BeneficiaryType{domain.BeneficiaryContingent, domain.BeneficiaryPrimary},
		},
		{
			name: "primary totals 99",
			items: []domain.Beneficiary{
				beneficiary(domain.BeneficiaryPrimary, "50"),
				beneficiary(domain.BeneficiaryPrimary, "49"),
			},
			wantErr: apperrors.ErrBusinessRule,
		},
		{
			name: "primary totals 101",
			items: []domain.Beneficiary{
				beneficiary(domain.BeneficiaryPrimary, "51"),
				beneficiary(domain.BeneficiaryPrimary, "50"),
			},
			wantErr: apperrors.ErrBusinessRule,
		},
		{
			name: "one good group does not rescue a bad one",
			items: []domain.Beneficiary{
				beneficiary(domain.BeneficiaryPrimary, "100"),
				beneficiary(domain.BeneficiaryContingent, "90"),
			},
			wantErr: apperrors.ErrBusinessRule,
		},
		{
			name:    "empty batch",
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "zero share alongside a full share",
			items: []domain.Beneficiary{
				beneficiary(domain.BeneficiaryPrimary, "100"),
				beneficiary(domain.BeneficiaryPrimary, "0"),
			},
			wantTypes: []domain.BeneficiaryType{domain.BeneficiaryPrimary},
		},
		{
			name: "invalid item",
			items: []domain.Beneficiary{
				beneficiary(domain.BeneficiaryPrimary, "-1"),
				beneficiary(domain.BeneficiaryPrimary, "100"),
			},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			types, err := domain.ValidateReplacementBatch(tt.items)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, types)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTypes, types)
		})
	}
}
