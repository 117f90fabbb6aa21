package domain

import "time"

const (
	AggressivenessConservative = "conservative"
	AggressivenessModerate     = "moderate"
	AggressivenessAggressive   = "aggressive"
)

// IsValidAggressiveness reports whether v is one of the three cleanup levels.
func IsValidAggressiveness(v string) bool {
	switch v {
	case AggressivenessConservative, AggressivenessModerate, AggressivenessAggressive:
		return true
	}
	return false
}

// UserPreferences is the single per-user settings row, keyed by the external
// identity. Absence of a row means "use defaults" and is not an error.
//
// NotifyOnComplete carries no column default on purpose: gorm drops zero
// values of defaulted fields from the INSERT, which would turn a stored
// false back into true. Defaults covers absent rows instead.
type UserPreferences struct {
	UserID           string    `gorm:"primaryKey;column:user_id" json:"user_id"`
	Aggressiveness   string    `gorm:"not null;default:aggressive" json:"aggressiveness"`
	ProtectedSenders []string  `gorm:"serializer:json" json:"protected_senders"`
	NotifyOnComplete bool      `gorm:"not null" json:"notify_on_complete"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}

// Defaults returns the preferences used for a user with no stored row.
func Defaults(userID string) *UserPreferences {
	return &UserPreferences{
		UserID:           userID,
		Aggressiveness:   AggressivenessAggressive,
		ProtectedSenders: []string{},
		NotifyOnComplete: true,
	}
}
