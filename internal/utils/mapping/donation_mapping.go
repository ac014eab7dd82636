package mapping

import (
	"github.com/karunya-trust/donation_backend/internal/core/domain"
	"github.com/karunya-trust/donation_backend/internal/models"
)

// ToModelDonation converts a domain donation to its database row model.
func ToModelDonation(d domain.Donation) models.Donation {
	m := models.Donation{
		DonationID: d.DonationID,
		Name:       d.Name,
		Email:      d.Email,
		Amount:     d.Amount,
		CreatedAt:  d.CreatedAt,
	}
	if d.CampaignID != "" {
		campaignID := d.CampaignID
		m.CampaignID = &campaignID
	}
	return m
}

// ToDomainDonation converts a database row model to the domain representation.
func ToDomainDonation(m models.Donation) domain.Donation {
	d := domain.Donation{
		DonationID: m.DonationID,
		Name:       m.Name,
		Email:      m.Email,
		Amount:     m.Amount,
		CreatedAt:  m.CreatedAt,
	}
	if m.CampaignID != nil {
		d.CampaignID = *m.CampaignID
	}
	return d
}
