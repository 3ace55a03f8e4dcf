package models

// InvestorProfile is a row of investor_profiles.
type InvestorProfile struct {
	ProfileID            string `db:"profile_id"`
	UserID               string `db:"user_id"`
	InvestorType         string `db:"investor_type"`
	IsAccredited         bool   `db:"is_accredited"`
	AccreditationType    *int   `db:"accreditation_type"` // Nullable
	CompletionPercentage int    `db:"completion_percentage"`
	IsActive             bool   `db:"is_active"`
	AuditFields
}

// InvestorTypeDetail is a row of investor_type_details. Attributes holds the variant payload as JSONB.
type InvestorTypeDetail struct {
	DetailID     string `db:"detail_id"`
	ProfileID    string `db:"profile_id"`
	InvestorType string `db:"investor_type"`
	Attributes   []byte `db:"attributes"`
	AuditFields
}
