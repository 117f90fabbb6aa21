package usecase

import preferencesdomain "umi-backend/internal/preferences/domain"

// UpdateInput carries a partial preferences write. Nil fields were omitted
// from the request and are left unchanged.
type UpdateInput struct {
	Aggressiveness   *string
	ProtectedSenders *[]string
	NotifyOnComplete *bool
}

type PreferencesUsecase interface {
	// Get returns the stored row, or defaults when none exists. It never
	// creates a row.
	Get(userID string) (*preferencesdomain.UserPreferences, error)
	// Update merges the provided fields over the current state, upserts, and
	// returns the post-write row.
	Update(userID string, input UpdateInput) (*preferencesdomain.UserPreferences, error)
}
