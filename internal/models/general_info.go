package models

// GeneralInfo is a row of general_infos. Attributes holds the variant payload as JSONB.
type GeneralInfo struct {
	GeneralInfoID string `db:"general_info_id"`
	DetailID      string `db:"detail_id"`
	ProfileID     string `db:"profile_id"`
	InvestorType  string `db:"investor_type"`
	Attributes    []byte `db:"attributes"`
	AuditFields
}

// GeneralInfoParty is a row of general_info_parties.
type GeneralInfoParty struct {
	PartyID       string `db:"party_id"`
	GeneralInfoID string `db:"general_info_id"`
	Kind          string `db:"kind"`
	OrderIndex    int    `db:"order_index"`
	Attributes    []byte `db:"attributes"`
	AuditFields
}
