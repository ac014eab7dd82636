package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation represents a single completed contribution within the core domain.
// This is the primary representation used by services.
// A Donation is never mutated after creation; corrections are new records.
type Donation struct {
	DonationID string          `json:"donationID"` // Primary Key (UUID)
	Name       string          `json:"name"`       // Donor display name
	Email      string          `json:"email"`      // Donor contact email
	Amount     decimal.Decimal `json:"amount"`     // Always > 0
	CampaignID string          `json:"campaignID"` // Optional FK -> campaigns.campaign_id
	CreatedAt  time.Time       `json:"createdAt"`  // Assigned at creation, immutable
}

// DonationStats is a pure aggregation over the full donation record set.
// It is recomputed on every call so it always reflects the latest create.
type DonationStats struct {
	Count         int64           `json:"count"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AverageAmount decimal.Decimal `json:"averageAmount"`
}
