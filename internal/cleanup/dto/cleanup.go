package dto

type Candidate struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Unread  bool   `json:"unread"`
}

type ScanResponse struct {
	Candidates []Candidate `json:"candidates"`
	Total      int         `json:"total"`
}

type CleanupRequest struct {
	// DeviceToken, when present, receives the completion push notification
	// if the user has notifications enabled.
	DeviceToken string `json:"deviceToken"`
}

type CleanupResponse struct {
	Action  string `json:"action"`
	Cleaned int    `json:"cleaned"`
	Skipped int    `json:"skipped"`
}
