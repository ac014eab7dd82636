package services

import (
	"context"

	"github.com/karunya-trust/donation_backend/internal/core/domain"
	"github.com/karunya-trust/donation_backend/internal/dto"
)

// CampaignReaderSvc defines read operations for campaign data.
type CampaignReaderSvc interface {
	// ListCampaigns retrieves all campaigns in creation order.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// GetCampaignByID retrieves a specific campaign by its ID.
	GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error)
}

// CampaignWriterSvc defines write operations for campaign data.
type CampaignWriterSvc interface {
	// CreateCampaign persists a new campaign.
	CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest) (*domain.Campaign, error)
}

// CampaignSvcFacade combines all campaign-related service interfaces.
type CampaignSvcFacade interface {
	CampaignReaderSvc
	CampaignWriterSvc
}
