package domain_test

import (
	"testing"

	"github.com/SscSPs/investor_onboarding_app/internal/apperrors"
	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvestorType_IsValid(t *testing.T) {
	for _, typ := range domain.AllInvestorTypes {
		assert.True(t, typ.IsValid(), string(typ))
	}
	assert.False(t, domain.InvestorType("PARTNERSHIP").IsValid())
	assert.False(t, domain.InvestorType("").IsValid())
}

func TestDecodeDetailAttributes(t *testing.T) {
	tests := []struct {
		name     string
		typ      domain.InvestorType
		payload  string
		wantType any
		wantErr  bool
	}{
		{name: "individual with empty payload", typ: domain.InvestorIndividual, payload: ``, wantType: &domain.IndividualDetail{}},
		{name: "joint investment", typ: domain.InvestorJoint, payload: `{"isJointInvestment":true}`, wantType: &domain.JointDetail{}},
		{name: "joint without flag", typ: domain.InvestorJoint, payload: `{"isJointInvestment":false}`, wantType: &domain.JointDetail{}, wantErr: true},
		{name: "ira roth", typ: domain.InvestorIRA, payload: `{"iraType":2}`, wantType: &domain.IRADetail{}},
		{name: "ira sub-type 6", typ: domain.InvestorIRA, payload: `{"iraType":6}`, wantType: &domain.IRADetail{}, wantErr: true},
		{name: "ira missing sub-type", typ: domain.InvestorIRA, payload: `{}`, wantType: &domain.IRADetail{}, wantErr: true},
		{name: "trust", typ: domain.InvestorTrust, payload: `{"trustName":"Family Trust","isRevocable":true}`, wantType: &domain.TrustDetail{}},
		{name: "entity bad type", typ: domain.InvestorEntity, payload: `{"entityType":"COOP"}`, wantType: &domain.EntityDetail{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := domain.DecodeDetailAttributes(tt.typ, []byte(tt.payload))
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, attrs)
			assert.Equal(t, tt.typ, attrs.InvestorType())

			err = attrs.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDecodeDetailAttributes_RejectsForeignFields(t *testing.T) {
	// An IRA field sent for an individual profile is not silently dropped.
	_, err := domain.DecodeDetailAttributes(domain.InvestorIndividual, []byte(`{"iraType":1}`))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.DecodeDetailAttributes("UNKNOWN", []byte(`{}`))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDecodeGeneralInfoAttributes(t *testing.T) {
	attrs, err := domain.DecodeGeneralInfoAttributes(domain.InvestorIRA,
		[]byte(`{"accountType":3,"custodianName":"Fidelity","ownerFirstName":"Sam","ownerLastName":"Lee","email":"sam@example.com"}`))
	require.NoError(t, err)
	ira, ok := attrs.(*domain.IRAGeneralInfo)
	require.True(t, ok)
	assert.Equal(t, domain.IRASEP, ira.AccountType)
	assert.Equal(t, "sam@example.com", ira.Email)
	assert.NoError(t, attrs.Validate())

	attrs, err = domain.DecodeGeneralInfoAttributes(domain.InvestorIRA,
		[]byte(`{"accountType":9,"custodianName":"Fidelity","ownerFirstName":"Sam","ownerLastName":"Lee"}`))
	require.NoError(t, err)
	assert.ErrorIs(t, attrs.Validate(), apperrors.ErrValidation)

	attrs, err = domain.DecodeGeneralInfoAttributes(domain.InvestorIndividual,
		[]byte(`{"firstName":"Sam","lastName":"Lee","dateOfBirth":"01/02/1990"}`))
	require.NoError(t, err)
	assert.ErrorIs(t, attrs.Validate(), apperrors.ErrValidation)

	attrs, err = domain.DecodeGeneralInfoAttributes(domain.InvestorEntity,
		[]byte(`{"entityName":"Acme","entityType":"LLC"}`))
	require.NoError(t, err)
	assert.NoError(t, attrs.Validate())
}

func TestPartyKindFor(t *testing.T) {
	tests := []struct {
		typ     domain.InvestorType
		want    domain.PartyKind
		wantErr bool
	}{
		{typ: domain.InvestorJoint, want: domain.PartyJointAccountHolder},
		{typ: domain.InvestorTrust, want: domain.PartyTrustGrantor},
		{typ: domain.InvestorEntity, want: domain.PartyEntityEquityOwner},
		{typ: domain.InvestorIndividual, wantErr: true},
		{typ: domain.InvestorIRA, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			kind, err := domain.PartyKindFor(tt.typ)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestDecodePartyAttributes_OrderIndex(t *testing.T) {
	holder := []byte(`{"firstName":"Jo","lastName":"Doe"}`)

	_, err := domain.DecodePartyAttributes(domain.InvestorJoint, 0, holder)
	assert.ErrorIs(t, err, apperrors.ErrValidation, "joint holders start at order 1")

	attrs, err := domain.DecodePartyAttributes(domain.InvestorJoint, 1, holder)
	require.NoError(t, err)
	assert.Equal(t, domain.PartyJointAccountHolder, attrs.PartyKind())

	_, err = domain.DecodePartyAttributes(domain.InvestorTrust, -1, holder)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	attrs, err = domain.DecodePartyAttributes(domain.InvestorTrust, 0, holder)
	require.NoError(t, err)
	assert.IsType(t, &domain.TrustGrantor{}, attrs)
}

func TestEquityOwnerOwnership(t *testing.T) {
	attrs, err := domain.DecodePartyAttributes(domain.InvestorEntity, 0, []byte(`{"name":"Pat","ownershipPercentage":"40.5"}`))
	require.NoError(t, err)
	require.NoError(t, attrs.Validate())

	over, err := domain.DecodePartyAttributes(domain.InvestorEntity, 0, []byte(`{"name":"Pat","ownershipPercentage":120}`))
	require.NoError(t, err)
	assert.ErrorIs(t, over.Validate(), apperrors.ErrValidation)

	parties := []domain.GeneralInfoParty{
		{Kind: domain.PartyEntityEquityOwner, Attributes: attrs},
		{Kind: domain.PartyEntityEquityOwner, Attributes: attrs},
	}
	assert.True(t, domain.TotalOwnership(parties).Equal(pct("81")))
}

func TestRestorePartyAttributes(t *testing.T) {
	attrs, err := domain.RestorePartyAttributes(domain.PartyTrustGrantor, []byte(`{"firstName":"A","lastName":"B"}`))
	require.NoError(t, err)
	assert.IsType(t, &domain.TrustGrantor{}, attrs)

	_, err = domain.RestorePartyAttributes("SIGNATORY", []byte(`{}`))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestInvestorProfile_ApplyAccreditationClaim(t *testing.T) {
	p := &domain.InvestorProfile{}

	err := p.ApplyAccreditationClaim(true, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.False(t, p.IsAccredited)

	bad := domain.AccreditationType(9)
	assert.ErrorIs(t, p.ApplyAccreditationClaim(true, &bad), apperrors.ErrValidation)

	netWorth := domain.AccreditationNetWorth
	require.NoError(t, p.ApplyAccreditationClaim(true, &netWorth))
	assert.True(t, p.IsAccredited)
	require.NotNil(t, p.AccreditationType)
	assert.Equal(t, domain.AccreditationNetWorth, *p.AccreditationType)

	require.NoError(t, p.ApplyAccreditationClaim(false, &netWorth))
	assert.False(t, p.IsAccredited)
	assert.Nil(t, p.AccreditationType)
}
