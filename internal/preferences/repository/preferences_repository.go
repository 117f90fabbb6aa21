package repository

import (
	"errors"
	"time"

	preferencesdomain "umi-backend/internal/preferences/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// preferencesRepository implements PreferencesRepository
type preferencesRepository struct {
	db *gorm.DB
}

func NewPreferencesRepository(db *gorm.DB) PreferencesRepository {
	return &preferencesRepository{db: db}
}

func (r *preferencesRepository) FindByUserID(userID string) (*preferencesdomain.UserPreferences, error) {
	var prefs preferencesdomain.UserPreferences
	err := r.db.Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prefs, nil
}

// Upsert writes the row in a single ON CONFLICT statement so concurrent
// updates from the same user stay last-write-wins at the row level.
func (r *preferencesRepository) Upsert(prefs *preferencesdomain.UserPreferences) error {
	now := time.Now()
	if prefs.CreatedAt.IsZero() {
		prefs.CreatedAt = now
	}
	prefs.UpdatedAt = now

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"aggressiveness",
			"protected_senders",
			"notify_on_complete",
			"updated_at",
		}),
	}).Create(prefs).Error
}
