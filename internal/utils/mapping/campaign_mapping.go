package mapping

import (
	"github.com/karunya-trust/donation_backend/internal/core/domain"
	"github.com/karunya-trust/donation_backend/internal/models"
)

// ToModelCampaign converts a domain campaign to its database row model.
func ToModelCampaign(c domain.Campaign) models.Campaign {
	return models.Campaign{
		CampaignID:   c.CampaignID,
		Title:        c.Title,
		Description:  c.Description,
		TargetAmount: c.TargetAmount,
		CreatedAt:    c.CreatedAt,
	}
}

// ToDomainCampaign converts a database row model to the domain representation.
func ToDomainCampaign(m models.Campaign) domain.Campaign {
	return domain.Campaign{
		CampaignID:   m.CampaignID,
		Title:        m.Title,
		Description:  m.Description,
		TargetAmount: m.TargetAmount,
		CreatedAt:    m.CreatedAt,
	}
}
