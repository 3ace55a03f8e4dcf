package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/investor_onboarding_app/internal/apperrors"
)

// investorVariant bundles everything that differs between investor types.
// Every type-dependent decision in the package goes through variantFor.
type investorVariant struct {
	newDetail      func() DetailAttributes
	newGeneralInfo func() GeneralInfoAttributes
	// partyKind is empty when the general info owns no child records.
	partyKind     PartyKind
	newParty      func() PartyAttributes
	minPartyOrder int
}

// AllInvestorTypes lists the supported investor types in display order.
var AllInvestorTypes = []InvestorType{InvestorIndividual, InvestorJoint, InvestorIRA, InvestorTrust, InvestorEntity}

func variantFor(t InvestorType) (investorVariant, error) {
	switch t {
	case InvestorIndividual:
		return investorVariant{
			newDetail:      func() DetailAttributes { return &IndividualDetail{} },
			newGeneralInfo: func() GeneralInfoAttributes { return &IndividualGeneralInfo{} },
		}, nil
	case InvestorJoint:
		return investorVariant{
			newDetail:      func() DetailAttributes { return &JointDetail{} },
			newGeneralInfo: func() GeneralInfoAttributes { return &JointGeneralInfo{} },
			partyKind:      PartyJointAccountHolder,
			newParty:       func() PartyAttributes { return &JointAccountHolder{} },
			minPartyOrder:  1,
		}, nil
	case InvestorIRA:
		return investorVariant{
			newDetail:      func() DetailAttributes { return &IRADetail{} },
			newGeneralInfo: func() GeneralInfoAttributes { return &IRAGeneralInfo{} },
		}, nil
	case InvestorTrust:
		return investorVariant{
			newDetail:      func() DetailAttributes { return &TrustDetail{} },
			newGeneralInfo: func() GeneralInfoAttributes { return &TrustGeneralInfo{} },
			partyKind:      PartyTrustGrantor,
			newParty:       func() PartyAttributes { return &TrustGrantor{} },
		}, nil
	case InvestorEntity:
		return investorVariant{
			newDetail:      func() DetailAttributes { return &EntityDetail{} },
			newGeneralInfo: func() GeneralInfoAttributes { return &EntityGeneralInfo{} },
			partyKind:      PartyEntityEquityOwner,
			newParty:       func() PartyAttributes { return &EntityEquityOwner{} },
		}, nil
	default:
		return investorVariant{}, fmt.Errorf("%w: unknown investor type %q", apperrors.ErrValidation, t)
	}
}

// decodeStrict unmarshals raw into target, rejecting fields the variant does not define.
// An empty payload leaves target at its zero value.
func decodeStrict(raw []byte, target any, what string) error {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid %s payload: %s", apperrors.ErrValidation, what, err.Error())
	}
	return nil
}

// DetailAttributes is the type-specific onboarding payload attached to a profile at creation.
type DetailAttributes interface {
	InvestorType() InvestorType
	Validate() error
}

// TypeSpecificDetail is owned 1:1 by an InvestorProfile and created with it.
type TypeSpecificDetail struct {
	DetailID     string           `json:"detailID"`
	ProfileID    string           `json:"profileID"`
	InvestorType InvestorType     `json:"investorType"`
	Attributes   DetailAttributes `json:"attributes"`
	AuditFields
}

// DecodeDetailAttributes builds the detail variant for t from its JSON payload.
func DecodeDetailAttributes(t InvestorType, raw []byte) (DetailAttributes, error) {
	v, err := variantFor(t)
	if err != nil {
		return nil, err
	}
	attrs := v.newDetail()
	if err := decodeStrict(raw, attrs, string(t)+" detail"); err != nil {
		return nil, err
	}
	return attrs, nil
}

// IndividualDetail has no onboarding fields beyond the investor type itself.
type IndividualDetail struct {
	CitizenshipStatus string `json:"citizenshipStatus,omitempty"`
}

func (*IndividualDetail) InvestorType() InvestorType { return InvestorIndividual }
func (d *IndividualDetail) Validate() error           { return validateStruct(d) }

type JointDetail struct {
	IsJointInvestment  bool   `json:"isJointInvestment"`
	JointOwnershipType string `json:"jointOwnershipType,omitempty"`
}

func (*JointDetail) InvestorType() InvestorType { return InvestorJoint }

func (d *JointDetail) Validate() error {
	if !d.IsJointInvestment {
		return fmt.Errorf("%w: isJointInvestment must be true for a joint investor profile", apperrors.ErrValidation)
	}
	return validateStruct(d)
}

// IRAAccountType is the IRA sub-type, 1 through 5.
type IRAAccountType int

const (
	IRATraditional IRAAccountType = iota + 1
	IRARoth
	IRASEP
	IRASimple
	IRAInherited
)

func (t IRAAccountType) IsValid() bool {
	return t >= IRATraditional && t <= IRAInherited
}

func validateIRAType(t IRAAccountType, field string) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", apperrors.ErrValidation, field, IRATraditional, IRAInherited, int(t))
	}
	return nil
}

type IRADetail struct {
	IRAType       IRAAccountType `json:"iraType"`
	CustodianName string         `json:"custodianName,omitempty"`
}

func (*IRADetail) InvestorType() InvestorType { return InvestorIRA }

func (d *IRADetail) Validate() error {
	if err := validateIRAType(d.IRAType, "iraType"); err != nil {
		return err
	}
	return validateStruct(d)
}

type TrustDetail struct {
	TrustName   string `json:"trustName,omitempty"`
	IsRevocable bool   `json:"isRevocable"`
}

func (*TrustDetail) InvestorType() InvestorType { return InvestorTrust }
func (d *TrustDetail) Validate() error           { return validateStruct(d) }

type EntityDetail struct {
	EntityName string `json:"entityName,omitempty"`
	EntityType string `json:"entityType,omitempty" validate:"omitempty,oneof=LLC CORPORATION PARTNERSHIP OTHER"`
}

func (*EntityDetail) InvestorType() InvestorType { return InvestorEntity }
func (d *EntityDetail) Validate() error           { return validateStruct(d) }
