package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation is the database row representation of a donation record.
type Donation struct {
	DonationID string          `db:"donation_id"`
	Name       string          `db:"name"`
	Email      string          `db:"email"`
	Amount     decimal.Decimal `db:"amount"`
	CampaignID *string         `db:"campaign_id"` // Nullable FK -> campaigns.campaign_id
	CreatedAt  time.Time       `db:"created_at"`
}
