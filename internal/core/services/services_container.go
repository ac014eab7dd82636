package services

import (
	portsrepo "github.com/karunya-trust/donation_backend/internal/core/ports/repositories"
	portssvc "github.com/karunya-trust/donation_backend/internal/core/ports/services"
	"github.com/karunya-trust/donation_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Donation = NewDonationService(repos.DonationRepo, WithSimulatedLatency(cfg.DonationLatency))
	container.Campaign = NewCampaignService(repos.CampaignRepo)

	// The session manager sits above the donation/campaign services and owns
	// the session-scoped state.
	container.Session = NewSessionService(container.Donation, container.Campaign)

	container.Receipt = NewReceiptService(container.Donation, cfg.Organization)

	return container
}
