package dto

import (
	"time"

	"github.com/karunya-trust/donation_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCampaignRequest defines the data needed to create a new campaign.
type CreateCampaignRequest struct {
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required,gtzero"`
}

// CampaignResponse defines the data returned for a campaign.
// Mirrors domain.Campaign.
type CampaignResponse struct {
	CampaignID   string          `json:"campaignID"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToCampaignResponse converts a domain.Campaign to CampaignResponse DTO.
func ToCampaignResponse(c *domain.Campaign) CampaignResponse {
	return CampaignResponse{
		CampaignID:   c.CampaignID,
		Title:        c.Title,
		Description:  c.Description,
		TargetAmount: c.TargetAmount,
		CreatedAt:    c.CreatedAt,
	}
}

// ToListCampaignResponse converts a slice of domain.Campaign to DTOs.
func ToListCampaignResponse(campaigns []domain.Campaign) []CampaignResponse {
	res := make([]CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		res[i] = ToCampaignResponse(&c)
	}
	return res
}

// ListCampaignsResponse wraps the list of campaigns.
type ListCampaignsResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
}
