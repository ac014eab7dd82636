package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/karunya-trust/donation_backend/internal/apperrors"
	"github.com/karunya-trust/donation_backend/internal/core/domain"
	portssvc "github.com/karunya-trust/donation_backend/internal/core/ports/services"
	"github.com/karunya-trust/donation_backend/internal/dto"
	"github.com/karunya-trust/donation_backend/internal/middleware"
)

// sessionService owns the session-scoped donation/campaign state. It is an
// explicit dependency-injected object constructed at startup, never ambient
// global state.
//
// Concurrency model: state-mutating operations (FetchCampaigns,
// CreateDonation) are serialized by opMu, so Loading means "the most recent
// request is outstanding" and two in-flight operations can never race on the
// Loading/Error pair. State reads take stateMu only and never block behind an
// in-flight operation.
type sessionService struct {
	donationSvc portssvc.DonationSvcFacade
	campaignSvc portssvc.CampaignReaderSvc

	opMu    sync.Mutex
	stateMu sync.RWMutex
	state   domain.SessionState
}

// NewSessionService creates the session state manager for one application
// instance. State is empty until the first FetchCampaigns.
func NewSessionService(donationSvc portssvc.DonationSvcFacade, campaignSvc portssvc.CampaignReaderSvc) portssvc.SessionSvcFacade {
	return &sessionService{
		donationSvc: donationSvc,
		campaignSvc: campaignSvc,
		state: domain.SessionState{
			Donations: []domain.Donation{},
			Campaigns: []domain.Campaign{},
		},
	}
}

// Ensure implementation matches interface
var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func (s *sessionService) beginOperation() {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.state.Loading = true
	s.state.Error = ""
}

func (s *sessionService) endOperation() {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.state.Loading = false
}

func (s *sessionService) setError(msg string) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.state.Error = msg
}

// FetchCampaigns reloads donations and campaigns. On success both lists are
// replaced and the first campaign becomes current; on failure the prior lists
// are left untouched, only the error state changes. Loading is cleared on
// every exit path.
func (s *sessionService) FetchCampaigns(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	logger := middleware.GetLoggerFromCtx(ctx)

	s.beginOperation()
	defer s.endOperation()

	donations, err := s.donationSvc.ListDonations(ctx)
	if err != nil {
		logger.Error("Failed to fetch donations for session", slog.String("error", err.Error()))
		s.setError(apperrors.ErrFetchFailure.Error())
		return fmt.Errorf("%w: %w", apperrors.ErrFetchFailure, err)
	}

	campaigns, err := s.campaignSvc.ListCampaigns(ctx)
	if err != nil {
		logger.Error("Failed to fetch campaigns for session", slog.String("error", err.Error()))
		s.setError(apperrors.ErrFetchFailure.Error())
		return fmt.Errorf("%w: %w", apperrors.ErrFetchFailure, err)
	}

	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.state.Donations = donations
	s.state.Campaigns = campaigns
	s.state.CurrentCampaign = nil
	if len(campaigns) > 0 {
		current := campaigns[0]
		s.state.CurrentCampaign = &current
	}
	logger.Info("Session state refreshed", slog.Int("donations", len(donations)), slog.Int("campaigns", len(campaigns)))
	return nil
}

// CreateDonation delegates to the donation service and appends the created
// record to session state. The append builds a fresh slice; the previous one
// is never mutated in place.
func (s *sessionService) CreateDonation(ctx context.Context, req dto.CreateDonationRequest) (*domain.Donation, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	logger := middleware.GetLoggerFromCtx(ctx)

	s.beginOperation()
	defer s.endOperation()

	donation, err := s.donationSvc.CreateDonation(ctx, req)
	if err != nil {
		if !apperrors.IsValidation(err) {
			logger.Error("Failed to create donation for session", slog.String("error", err.Error()))
		}
		s.setError(err.Error())
		return nil, err
	}

	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	donations := make([]domain.Donation, 0, len(s.state.Donations)+1)
	donations = append(donations, s.state.Donations...)
	donations = append(donations, *donation)
	s.state.Donations = donations

	logger.Info("Donation appended to session state", slog.String("donation_id", donation.DonationID))
	return donation, nil
}

// SelectCampaign marks the campaign with the given ID as current. An unknown
// ID is a tolerant no-op: state is unchanged and false is returned, so callers
// that care can surface it while browsing UIs can ignore it.
func (s *sessionService) SelectCampaign(campaignID string) bool {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	for _, c := range s.state.Campaigns {
		if c.CampaignID == campaignID {
			current := c
			s.state.CurrentCampaign = &current
			return true
		}
	}
	return false
}

// State returns a snapshot copy of the session state. Slices and the current
// campaign are copied so callers can never alias the manager's own storage.
func (s *sessionService) State() domain.SessionState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	snapshot := domain.SessionState{
		Donations: make([]domain.Donation, len(s.state.Donations)),
		Campaigns: make([]domain.Campaign, len(s.state.Campaigns)),
		Loading:   s.state.Loading,
		Error:     s.state.Error,
	}
	copy(snapshot.Donations, s.state.Donations)
	copy(snapshot.Campaigns, s.state.Campaigns)
	if s.state.CurrentCampaign != nil {
		current := *s.state.CurrentCampaign
		snapshot.CurrentCampaign = &current
	}
	return snapshot
}
