package services

import (
	"context"

	"github.com/karunya-trust/donation_backend/internal/core/domain"
	"github.com/karunya-trust/donation_backend/internal/dto"
)

// SessionSvcFacade is the session-scoped donation/campaign state manager
// consumed by browsing and donation-form UIs. All state-mutating operations
// are serialized; State returns copies, never live references.
type SessionSvcFacade interface {
	// FetchCampaigns reloads donations and campaigns from the backing
	// services, selecting the first campaign as current. On failure the
	// prior state is left untouched, the error state is set, and the error
	// is also returned to the caller.
	FetchCampaigns(ctx context.Context) error

	// CreateDonation delegates to the donation service and appends the new
	// record to session state. Failures set the error state and are returned.
	CreateDonation(ctx context.Context, req dto.CreateDonationRequest) (*domain.Donation, error)

	// SelectCampaign marks the campaign with the given ID as current.
	// An unknown ID leaves state unchanged and returns false.
	SelectCampaign(campaignID string) bool

	// State returns a snapshot copy of the current session state.
	State() domain.SessionState
}
