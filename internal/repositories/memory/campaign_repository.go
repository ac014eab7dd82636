package memory

import (
	"context"
	"sync"
	"time"

	"github.com/karunya-trust/donation_backend/internal/apperrors"
	"github.com/karunya-trust/donation_backend/internal/core/domain"
	portsrepo "github.com/karunya-trust/donation_backend/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignRepository keeps the campaign set in memory, seeded with a sample
// set so the browsing UI has content without a persistence backend.
type CampaignRepository struct {
	mu        sync.Mutex
	campaigns []domain.Campaign
	byID      map[string]int
}

// NewCampaignRepository creates an in-memory campaign store preloaded with
// sample campaigns.
func NewCampaignRepository() *CampaignRepository {
	r := &CampaignRepository{
		campaigns: []domain.Campaign{},
		byID:      map[string]int{},
	}
	for _, c := range sampleCampaigns() {
		r.byID[c.CampaignID] = len(r.campaigns)
		r.campaigns = append(r.campaigns, c)
	}
	return r
}

// Ensure implementation matches interface
var _ portsrepo.CampaignRepositoryFacade = (*CampaignRepository)(nil)

func sampleCampaigns() []domain.Campaign {
	now := time.Now()
	return []domain.Campaign{
		{CampaignID: uuid.NewString(), Title: "Mid-Day Meals", Description: "Daily meals for 200 school children", TargetAmount: decimal.NewFromInt(500000), CreatedAt: now},
		{CampaignID: uuid.NewString(), Title: "Rural Clinic Supplies", Description: "Medical consumables for the village clinic", TargetAmount: decimal.NewFromInt(250000), CreatedAt: now},
		{CampaignID: uuid.NewString(), Title: "Scholarship Fund", Description: "Tuition support for first-generation students", TargetAmount: decimal.NewFromInt(750000), CreatedAt: now},
	}
}

// SaveCampaign persists a new campaign.
func (r *CampaignRepository) SaveCampaign(_ context.Context, campaign domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[campaign.CampaignID]; exists {
		return apperrors.ErrDuplicate
	}
	r.byID[campaign.CampaignID] = len(r.campaigns)
	r.campaigns = append(r.campaigns, campaign)
	return nil
}

// ListCampaigns returns a snapshot copy of all campaigns in creation order.
func (r *CampaignRepository) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaigns := make([]domain.Campaign, len(r.campaigns))
	copy(campaigns, r.campaigns)
	return campaigns, nil
}

// FindCampaignByID retrieves a single campaign by ID.
func (r *CampaignRepository) FindCampaignByID(_ context.Context, campaignID string) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[campaignID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	campaign := r.campaigns[idx]
	return &campaign, nil
}
