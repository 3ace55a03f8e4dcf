package models

import "github.com/shopspring/decimal"

// Beneficiary is a row of beneficiaries. percentage_of_benefit is NUMERIC(5,2).
type Beneficiary struct {
	BeneficiaryID       string          `db:"beneficiary_id"`
	ProfileID           string          `db:"profile_id"`
	BeneficiaryType     string          `db:"beneficiary_type"`
	FirstName           string          `db:"first_name"`
	LastName            string          `db:"last_name"`
	Relationship        string          `db:"relationship"`
	DateOfBirth         *string         `db:"date_of_birth"`
	Email               *string         `db:"email"`
	Phone               *string         `db:"phone"`
	PercentageOfBenefit decimal.Decimal `db:"percentage_of_benefit"`
	AuditFields
}
