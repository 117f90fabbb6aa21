package dto

import "time"

type StatusResponse struct {
	IsConnected bool    `json:"isConnected"`
	Error       *string `json:"error"`
}

type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// TokenErrorResponse always carries missingScopes. The list is a fixed
// placeholder for now, there is no scope negotiation.
type TokenErrorResponse struct {
	Error         string   `json:"error"`
	MissingScopes []string `json:"missingScopes"`
}
