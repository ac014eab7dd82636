package dto

import "github.com/karunya-trust/donation_backend/internal/core/domain"

// SessionStateResponse is the serialized session state exposed to browsing UIs.
type SessionStateResponse struct {
	Donations       []DonationResponse `json:"donations"`
	Campaigns       []CampaignResponse `json:"campaigns"`
	CurrentCampaign *CampaignResponse  `json:"currentCampaign,omitempty"`
	Loading         bool               `json:"loading"`
	Error           string             `json:"error,omitempty"`
}

// ToSessionStateResponse converts a domain.SessionState to its DTO.
func ToSessionStateResponse(s domain.SessionState) SessionStateResponse {
	resp := SessionStateResponse{
		Donations: ToListDonationResponse(s.Donations),
		Campaigns: ToListCampaignResponse(s.Campaigns),
		Loading:   s.Loading,
		Error:     s.Error,
	}
	if s.CurrentCampaign != nil {
		current := ToCampaignResponse(s.CurrentCampaign)
		resp.CurrentCampaign = &current
	}
	return resp
}
