package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/karunya-trust/donation_backend/internal/core/domain"
	portsrepo "github.com/karunya-trust/donation_backend/internal/core/ports/repositories"
	portssvc "github.com/karunya-trust/donation_backend/internal/core/ports/services"
	"github.com/karunya-trust/donation_backend/internal/dto"
	"github.com/karunya-trust/donation_backend/internal/middleware"
)

type campaignService struct {
	campaignRepo portsrepo.CampaignRepositoryFacade
}

// NewCampaignService creates a campaign service over the given repository.
func NewCampaignService(repo portsrepo.CampaignRepositoryFacade) portssvc.CampaignSvcFacade {
	return &campaignService{campaignRepo: repo}
}

// Ensure implementation matches interface
var _ portssvc.CampaignSvcFacade = (*campaignService)(nil)

func (s *campaignService) CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest) (*domain.Campaign, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	campaign := domain.Campaign{
		CampaignID:   uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		CreatedAt:    time.Now(),
	}

	if err := s.campaignRepo.SaveCampaign(ctx, campaign); err != nil {
		logger.Error("Failed to save campaign in repository", slog.String("error", err.Error()), slog.String("campaign_id", campaign.CampaignID))
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	logger.Info("Campaign created successfully in service", slog.String("campaign_id", campaign.CampaignID))
	return &campaign, nil
}

func (s *campaignService) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	campaigns, err := s.campaignRepo.ListCampaigns(ctx)
	if err != nil {
		logger.Error("Failed to list campaigns from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	if campaigns == nil {
		return []domain.Campaign{}, nil
	}
	return campaigns, nil
}

func (s *campaignService) GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return campaign, nil
}
