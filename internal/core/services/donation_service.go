package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/karunya-trust/donation_backend/internal/core/domain"
	portsrepo "github.com/karunya-trust/donation_backend/internal/core/ports/repositories"
	portssvc "github.com/karunya-trust/donation_backend/internal/core/ports/services"
	"github.com/karunya-trust/donation_backend/internal/dto"
	"github.com/karunya-trust/donation_backend/internal/middleware"
	"github.com/karunya-trust/donation_backend/internal/utils"
)

// donationService fronts the donation store. With the in-memory adapter it
// simulates the latency of a real network backend; the delay is a UX
// simulation only, not a correctness requirement.
type donationService struct {
	donationRepo portsrepo.DonationRepositoryFacade
	latency      time.Duration
}

// DonationServiceOption configures a donation service.
type DonationServiceOption func(*donationService)

// WithSimulatedLatency sets the artificial per-call delay. Zero disables it.
func WithSimulatedLatency(d time.Duration) DonationServiceOption {
	return func(s *donationService) {
		s.latency = d
	}
}

// NewDonationService creates a donation service over the given repository.
func NewDonationService(repo portsrepo.DonationRepositoryFacade, opts ...DonationServiceOption) portssvc.DonationSvcFacade {
	s := &donationService{donationRepo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure implementation matches interface
var _ portssvc.DonationSvcFacade = (*donationService)(nil)

// simulateLatency waits for the configured artificial delay, honoring context
// cancellation. The underlying store call itself never hangs.
func (s *donationService) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.latency):
		return nil
	}
}

// CreateDonation validates input, assigns identity and timestamp, and appends
// the record to the store. A failed create leaves the store unchanged.
func (s *donationService) CreateDonation(ctx context.Context, req dto.CreateDonationRequest) (*domain.Donation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := utils.ValidateDonationAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := utils.ValidateDonorInfo(req.Name, req.Email); err != nil {
		return nil, err
	}

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	donation := domain.Donation{
		DonationID: uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Amount:     req.Amount,
		CampaignID: req.CampaignID,
		CreatedAt:  time.Now(),
	}

	if err := s.donationRepo.SaveDonation(ctx, donation); err != nil {
		logger.Error("Failed to save donation in repository", slog.String("error", err.Error()), slog.String("donation_id", donation.DonationID))
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	logger.Info("Donation created successfully in service", slog.String("donation_id", donation.DonationID))
	return &donation, nil
}

// ListDonations retrieves all donations in creation order.
func (s *donationService) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	donations, err := s.donationRepo.ListDonations(ctx)
	if err != nil {
		logger.Error("Failed to list donations from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	if donations == nil {
		return []domain.Donation{}, nil
	}
	return donations, nil
}

// GetDonationByID retrieves a specific donation.
func (s *donationService) GetDonationByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	donation, err := s.donationRepo.FindDonationByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	return donation, nil
}

// GetDonationStats aggregates over the current record set. The repository
// recomputes on every call, so the result always reflects the latest create.
func (s *donationService) GetDonationStats(ctx context.Context) (domain.DonationStats, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	stats, err := s.donationRepo.DonationStats(ctx)
	if err != nil {
		logger.Error("Failed to aggregate donation stats", slog.String("error", err.Error()))
		return domain.DonationStats{}, fmt.Errorf("failed to get donation stats: %w", err)
	}
	return stats, nil
}
