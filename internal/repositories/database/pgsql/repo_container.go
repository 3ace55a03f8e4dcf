package pgsql

import (
	portsrepo "github.com/SscSPs/investor_onboarding_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProfileRepo:       newPgxProfileRepository(dbPool),
		GeneralInfoRepo:   newPgxGeneralInfoRepository(dbPool),
		BeneficiaryRepo:   newPgxBeneficiaryRepository(dbPool),
		AccreditationRepo: newPgxAccreditationRepository(dbPool),
	}
}
