package dto

import (
	"time"

	"github.com/karunya-trust/donation_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDonationRequest defines the data a donor submits from the donation form.
type CreateDonationRequest struct {
	Name       string          `json:"name" binding:"required"`
	Email      string          `json:"email" binding:"required,email"`
	Amount     decimal.Decimal `json:"amount" binding:"required,gtzero"`
	CampaignID string          `json:"campaignID"` // Optional association
}

// DonationResponse defines the data returned for a donation.
// Mirrors domain.Donation.
type DonationResponse struct {
	DonationID string          `json:"donationID"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Amount     decimal.Decimal `json:"amount"`
	CampaignID string          `json:"campaignID,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToDonationResponse converts a domain.Donation to DonationResponse DTO.
func ToDonationResponse(d *domain.Donation) DonationResponse {
	return DonationResponse{
		DonationID: d.DonationID,
		Name:       d.Name,
		Email:      d.Email,
		Amount:     d.Amount,
		CampaignID: d.CampaignID,
		CreatedAt:  d.CreatedAt,
	}
}

// ToListDonationResponse converts a slice of domain.Donation to DTOs.
func ToListDonationResponse(donations []domain.Donation) []DonationResponse {
	res := make([]DonationResponse, len(donations))
	for i, d := range donations {
		res[i] = ToDonationResponse(&d)
	}
	return res
}

// ListDonationsResponse wraps the list of donations.
type ListDonationsResponse struct {
	Donations []DonationResponse `json:"donations"`
}

// DonationStatsResponse defines the aggregate returned by the stats endpoint.
type DonationStatsResponse struct {
	Count         int64           `json:"count"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AverageAmount decimal.Decimal `json:"averageAmount"`
}

// ToDonationStatsResponse converts domain.DonationStats to its DTO.
func ToDonationStatsResponse(s domain.DonationStats) DonationStatsResponse {
	return DonationStatsResponse{
		Count:         s.Count,
		TotalAmount:   s.TotalAmount,
		AverageAmount: s.AverageAmount,
	}
}
