package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign is the database row representation of a campaign.
type Campaign struct {
	CampaignID   string          `db:"campaign_id"`
	Title        string          `db:"title"`
	Description  string          `db:"description"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	CreatedAt    time.Time       `db:"created_at"`
}
