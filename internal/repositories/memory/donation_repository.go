// Package memory provides in-memory repository adapters. They stand in for a
// real persistence backend: state is session-lifetime only and resets on
// process restart.
package memory

import (
	"context"
	"sync"

	"github.com/karunya-trust/donation_backend/internal/apperrors"
	"github.com/karunya-trust/donation_backend/internal/core/domain"
	portsrepo "github.com/karunya-trust/donation_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// DonationRepository keeps the donation record set in memory. Writes are
// append-only; records are never mutated after creation.
type DonationRepository struct {
	mu        sync.Mutex
	donations []domain.Donation
	byID      map[string]int
}

// NewDonationRepository creates an empty in-memory donation store.
func NewDonationRepository() *DonationRepository {
	return &DonationRepository{
		donations: []domain.Donation{},
		byID:      map[string]int{},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DonationRepositoryFacade = (*DonationRepository)(nil)

// SaveDonation appends a new donation record. The amount invariant is
// re-checked here: this check is authoritative even if service-level
// validation was bypassed.
func (r *DonationRepository) SaveDonation(_ context.Context, donation domain.Donation) error {
	if donation.Amount.LessThanOrEqual(decimal.Zero) {
		return apperrors.ErrValidation
	}
	if donation.Name == "" || donation.Email == "" {
		return apperrors.ErrValidation
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[donation.DonationID]; exists {
		return apperrors.ErrDuplicate
	}
	r.byID[donation.DonationID] = len(r.donations)
	r.donations = append(r.donations, donation)
	return nil
}

// ListDonations returns a snapshot copy of all donations in creation order.
func (r *DonationRepository) ListDonations(_ context.Context) ([]domain.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	donations := make([]domain.Donation, len(r.donations))
	copy(donations, r.donations)
	return donations, nil
}

// FindDonationByID retrieves a single donation by ID.
func (r *DonationRepository) FindDonationByID(_ context.Context, donationID string) (*domain.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[donationID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	donation := r.donations[idx]
	return &donation, nil
}

// DonationStats aggregates over the full record set on every call; there is
// no cached aggregate, so the result is always consistent with the latest save.
func (r *DonationRepository) DonationStats(_ context.Context) (domain.DonationStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := domain.DonationStats{
		Count:         int64(len(r.donations)),
		TotalAmount:   decimal.Zero,
		AverageAmount: decimal.Zero,
	}
	for _, d := range r.donations {
		stats.TotalAmount = stats.TotalAmount.Add(d.Amount)
	}
	if stats.Count > 0 {
		stats.AverageAmount = stats.TotalAmount.Div(decimal.NewFromInt(stats.Count))
	}
	return stats, nil
}
