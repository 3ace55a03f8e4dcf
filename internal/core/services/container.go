package services

import (
	portsrepo "github.com/SscSPs/investor_onboarding_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investor_onboarding_app/internal/core/ports/services"
)

// NewServiceContainer wires every service to its repositories.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		InvestorType:  NewInvestorTypeService(repos.ProfileRepo),
		GeneralInfo:   NewGeneralInfoService(repos.ProfileRepo, repos.GeneralInfoRepo),
		Beneficiary:   NewBeneficiaryService(repos.ProfileRepo, repos.BeneficiaryRepo),
		Accreditation: NewAccreditationService(repos.ProfileRepo, repos.AccreditationRepo),
	}
}
