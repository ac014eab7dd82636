package repositories

import (
	"context"

	"github.com/karunya-trust/donation_backend/internal/core/domain"
)

// DonationReaderRepository defines read operations over the donation record set.
type DonationReaderRepository interface {
	// ListDonations returns a snapshot copy of all donations in creation order.
	ListDonations(ctx context.Context) ([]domain.Donation, error)

	// FindDonationByID retrieves a single donation, or apperrors.ErrNotFound.
	FindDonationByID(ctx context.Context, donationID string) (*domain.Donation, error)

	// DonationStats aggregates count, total and average over the full record
	// set. Implementations must recompute on every call, never cache.
	DonationStats(ctx context.Context) (domain.DonationStats, error)
}

// DonationWriterRepository defines write operations for donation data.
type DonationWriterRepository interface {
	// SaveDonation appends a new donation record. It must reject non-positive
	// amounts with apperrors.ErrValidation even though the service validates
	// first, and duplicate IDs with apperrors.ErrDuplicate. A failed save
	// leaves the record set unchanged.
	SaveDonation(ctx context.Context, donation domain.Donation) error
}

// DonationRepositoryFacade combines all donation repository interfaces.
type DonationRepositoryFacade interface {
	DonationReaderRepository
	DonationWriterRepository
}
