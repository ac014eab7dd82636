package repositories

import (
	"context"

	"github.com/karunya-trust/donation_backend/internal/core/domain"
)

// CampaignReaderRepository defines read operations for campaign data.
type CampaignReaderRepository interface {
	// ListCampaigns returns a snapshot copy of all campaigns in creation order.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// FindCampaignByID retrieves a single campaign, or apperrors.ErrNotFound.
	FindCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error)
}

// CampaignWriterRepository defines write operations for campaign data.
type CampaignWriterRepository interface {
	// SaveCampaign persists a new campaign. Duplicate IDs fail with
	// apperrors.ErrDuplicate.
	SaveCampaign(ctx context.Context, campaign domain.Campaign) error
}

// CampaignRepositoryFacade combines all campaign repository interfaces.
type CampaignRepositoryFacade interface {
	CampaignReaderRepository
	CampaignWriterRepository
}
