package domain

// SessionState is the in-memory state owned by the session manager for one
// running instance of the application. Donations and campaigns are value-like
// records copied into and out of it; the manager never hands out references to
// its own slices.
type SessionState struct {
	Donations       []Donation `json:"donations"`
	Campaigns       []Campaign `json:"campaigns"`
	CurrentCampaign *Campaign  `json:"currentCampaign,omitempty"`
	Loading         bool       `json:"loading"`
	Error           string     `json:"error,omitempty"`
}
