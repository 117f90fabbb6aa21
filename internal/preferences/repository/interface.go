package repository

import preferencesdomain "umi-backend/internal/preferences/domain"

// PreferencesRepository persists the per-user settings row.
type PreferencesRepository interface {
	// FindByUserID returns nil, nil when the user has no row yet.
	FindByUserID(userID string) (*preferencesdomain.UserPreferences, error)
	// Upsert inserts or updates the row keyed by user id in one statement.
	Upsert(prefs *preferencesdomain.UserPreferences) error
}
