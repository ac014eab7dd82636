package services

import (
	"context"

	"github.com/karunya-trust/donation_backend/internal/core/domain"
	"github.com/karunya-trust/donation_backend/internal/dto"
)

// DonationReaderSvc defines read operations for donation data.
type DonationReaderSvc interface {
	// ListDonations retrieves all donations in creation order.
	ListDonations(ctx context.Context) ([]domain.Donation, error)

	// GetDonationByID retrieves a specific donation by its ID.
	GetDonationByID(ctx context.Context, donationID string) (*domain.Donation, error)

	// GetDonationStats aggregates over the current record set.
	GetDonationStats(ctx context.Context) (domain.DonationStats, error)
}

// DonationWriterSvc defines write operations for donation data.
type DonationWriterSvc interface {
	// CreateDonation validates the request, assigns identity and timestamp,
	// and persists the new donation. A failed create leaves the store
	// unchanged.
	CreateDonation(ctx context.Context, req dto.CreateDonationRequest) (*domain.Donation, error)
}

// DonationSvcFacade combines all donation-related service interfaces.
type DonationSvcFacade interface {
	DonationReaderSvc
	DonationWriterSvc
}
