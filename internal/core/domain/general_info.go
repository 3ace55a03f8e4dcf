package domain

import (
	"fmt"

	"github.com/SscSPs/investor_onboarding_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// GeneralInfoAttributes is the secondary onboarding payload nested under a type-specific detail.
type GeneralInfoAttributes interface {
	InvestorType() InvestorType
	Validate() error
}

// GeneralInfo is owned 1:1 by a TypeSpecificDetail. Joint, Trust and Entity
// variants additionally own an ordered list of parties.
type GeneralInfo struct {
	GeneralInfoID string                `json:"generalInfoID"`
	DetailID      string                `json:"detailID"`
	ProfileID     string                `json:"profileID"`
	InvestorType  InvestorType          `json:"investorType"`
	Attributes    GeneralInfoAttributes `json:"attributes"`
	Parties       []GeneralInfoParty    `json:"parties"`
	AuditFields
}

// DecodeGeneralInfoAttributes builds the general info variant for t from its JSON payload.
func DecodeGeneralInfoAttributes(t InvestorType, raw []byte) (GeneralInfoAttributes, error) {
	v, err := variantFor(t)
	if err != nil {
		return nil, err
	}
	attrs := v.newGeneralInfo()
	if err := decodeStrict(raw, attrs, string(t)+" general info"); err != nil {
		return nil, err
	}
	return attrs, nil
}

// ContactInfo is shared by every general info variant.
type ContactInfo struct {
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty"`
	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Country      string `json:"country,omitempty"`
}

type IndividualGeneralInfo struct {
	FirstName   string `json:"firstName" validate:"required"`
	MiddleName  string `json:"middleName,omitempty"`
	LastName    string `json:"lastName" validate:"required"`
	DateOfBirth string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TaxID       string `json:"taxID,omitempty"`
	Occupation  string `json:"occupation,omitempty"`
	ContactInfo
}

func (*IndividualGeneralInfo) InvestorType() InvestorType { return InvestorIndividual }
func (g *IndividualGeneralInfo) Validate() error           { return validateStruct(g) }

type JointGeneralInfo struct {
	AccountName string `json:"accountName" validate:"required"`
	ContactInfo
}

func (*JointGeneralInfo) InvestorType() InvestorType { return InvestorJoint }
func (g *JointGeneralInfo) Validate() error           { return validateStruct(g) }

type IRAGeneralInfo struct {
	AccountType            IRAAccountType `json:"accountType"`
	CustodianName          string         `json:"custodianName" validate:"required"`
	CustodianAccountNumber string         `json:"custodianAccountNumber,omitempty"`
	OwnerFirstName         string         `json:"ownerFirstName" validate:"required"`
	OwnerLastName          string         `json:"ownerLastName" validate:"required"`
	DateOfBirth            string         `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TaxID                  string         `json:"taxID,omitempty"`
	ContactInfo
}

func (*IRAGeneralInfo) InvestorType() InvestorType { return InvestorIRA }

func (g *IRAGeneralInfo) Validate() error {
	if err := validateIRAType(g.AccountType, "accountType"); err != nil {
		return err
	}
	return validateStruct(g)
}

type TrustGeneralInfo struct {
	TrustName        string `json:"trustName" validate:"required"`
	TrustTaxID       string `json:"trustTaxID,omitempty"`
	DateEstablished  string `json:"dateEstablished,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StateOfFormation string `json:"stateOfFormation,omitempty"`
	TrusteeName      string `json:"trusteeName,omitempty"`
	ContactInfo
}

func (*TrustGeneralInfo) InvestorType() InvestorType { return InvestorTrust }
func (g *TrustGeneralInfo) Validate() error           { return validateStruct(g) }

type EntityGeneralInfo struct {
	EntityName       string `json:"entityName" validate:"required"`
	EntityType       string `json:"entityType" validate:"required,oneof=LLC CORPORATION PARTNERSHIP OTHER"`
	EIN              string `json:"ein,omitempty"`
	StateOfFormation string `json:"stateOfFormation,omitempty"`
	DateFormed       string `json:"dateFormed,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ContactInfo
}

func (*EntityGeneralInfo) InvestorType() InvestorType { return InvestorEntity }
func (g *EntityGeneralInfo) Validate() error           { return validateStruct(g) }

// PartyKind names the child-record shape owned by a general info.
type PartyKind string

const (
	PartyJointAccountHolder PartyKind = "JOINT_ACCOUNT_HOLDER"
	PartyTrustGrantor       PartyKind = "TRUST_GRANTOR"
	PartyEntityEquityOwner  PartyKind = "ENTITY_EQUITY_OWNER"
)

// PartyAttributes is the payload of a child record (account holder, grantor, equity owner).
type PartyAttributes interface {
	PartyKind() PartyKind
	Validate() error
}

// GeneralInfoParty is a child record of a Joint, Trust or Entity general info.
type GeneralInfoParty struct {
	PartyID       string          `json:"partyID"`
	GeneralInfoID string          `json:"generalInfoID"`
	Kind          PartyKind       `json:"kind"`
	OrderIndex    int             `json:"orderIndex"`
	Attributes    PartyAttributes `json:"attributes"`
	AuditFields
}

// PartyKindFor returns the child-record kind accepted by general info of type t.
func PartyKindFor(t InvestorType) (PartyKind, error) {
	v, err := variantFor(t)
	if err != nil {
		return "", err
	}
	if v.partyKind == "" {
		return "", fmt.Errorf("%w: %s general info does not accept child records", apperrors.ErrValidation, t)
	}
	return v.partyKind, nil
}

// DecodePartyAttributes validates orderIndex for a party under a general info of
// type parentType and decodes its payload.
func DecodePartyAttributes(parentType InvestorType, orderIndex int, raw []byte) (PartyAttributes, error) {
	kind, err := PartyKindFor(parentType)
	if err != nil {
		return nil, err
	}
	v, _ := variantFor(parentType)
	if orderIndex < v.minPartyOrder {
		return nil, fmt.Errorf("%w: orderIndex must be at least %d for %s", apperrors.ErrValidation, v.minPartyOrder, kind)
	}
	attrs := v.newParty()
	if err := decodeStrict(raw, attrs, string(kind)); err != nil {
		return nil, err
	}
	return attrs, nil
}

// RestorePartyAttributes decodes a stored party payload by its kind.
func RestorePartyAttributes(kind PartyKind, raw []byte) (PartyAttributes, error) {
	for _, t := range AllInvestorTypes {
		v, _ := variantFor(t)
		if v.partyKind == kind && v.newParty != nil {
			attrs := v.newParty()
			if err := decodeStrict(raw, attrs, string(kind)); err != nil {
				return nil, err
			}
			return attrs, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown party kind %q", apperrors.ErrValidation, kind)
}

type JointAccountHolder struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	DateOfBirth  string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TaxID        string `json:"taxID,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Relationship string `json:"relationship,omitempty"`
}

func (*JointAccountHolder) PartyKind() PartyKind { return PartyJointAccountHolder }
func (h *JointAccountHolder) Validate() error    { return validateStruct(h) }

type TrustGrantor struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
}

func (*TrustGrantor) PartyKind() PartyKind { return PartyTrustGrantor }
func (g *TrustGrantor) Validate() error    { return validateStruct(g) }

type EntityEquityOwner struct {
	Name                string          `json:"name" validate:"required"`
	Title               string          `json:"title,omitempty"`
	Email               string          `json:"email,omitempty" validate:"omitempty,email"`
	OwnershipPercentage decimal.Decimal `json:"ownershipPercentage"`
}

func (*EntityEquityOwner) PartyKind() PartyKind { return PartyEntityEquityOwner }

func (o *EntityEquityOwner) Validate() error {
	if err := ValidatePercentage(o.OwnershipPercentage, "ownershipPercentage"); err != nil {
		return err
	}
	return validateStruct(o)
}

// TotalOwnership sums the ownership percentages of the equity owners in parties.
func TotalOwnership(parties []GeneralInfoParty) decimal.Decimal {
	total := decimal.Zero
	for _, p := range parties {
		if owner, ok := p.Attributes.(*EntityEquityOwner); ok {
			total = total.Add(owner.OwnershipPercentage)
		}
	}
	return total
}
