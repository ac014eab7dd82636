package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign represents a fundraising initiative with its own identity and
// lifecycle, independent of the donations recorded against it.
type Campaign struct {
	CampaignID   string          `json:"campaignID"` // Primary Key (UUID)
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
}
