package memory

import (
	portsrepo "github.com/karunya-trust/donation_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the in-memory repository adapters.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DonationRepo: NewDonationRepository(),
		CampaignRepo: NewCampaignRepository(),
	}
}
