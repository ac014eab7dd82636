package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/karunya-trust/donation_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgsql repository adapters over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DonationRepo: newPgxDonationRepository(dbPool),
		CampaignRepo: newPgxCampaignRepository(dbPool),
	}
}
