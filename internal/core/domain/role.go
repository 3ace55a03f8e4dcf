package domain

// Role is the caller's role as asserted by the access token.
type Role string

const (
	RoleInvestor       Role = "INVESTOR"
	RoleAdvisor        Role = "ADVISOR"
	RoleOperationsTeam Role = "OPERATIONS_TEAM"
	RoleAdmin          Role = "ADMIN"
)

// ReviewerRoles may verify or reject accreditations.
var ReviewerRoles = []Role{RoleAdvisor, RoleOperationsTeam}
