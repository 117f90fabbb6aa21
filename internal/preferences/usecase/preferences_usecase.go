package usecase

import (
	"errors"

	preferencesdomain "umi-backend/internal/preferences/domain"
	"umi-backend/internal/preferences/repository"
)

// ErrInvalidAggressiveness rejects any value outside the three cleanup levels.
var ErrInvalidAggressiveness = errors.New("invalid aggressiveness value")

// preferencesUsecase implements PreferencesUsecase
type preferencesUsecase struct {
	prefsRepo repository.PreferencesRepository
}

func NewPreferencesUsecase(prefsRepo repository.PreferencesRepository) PreferencesUsecase {
	return &preferencesUsecase{prefsRepo: prefsRepo}
}

func (u *preferencesUsecase) Get(userID string) (*preferencesdomain.UserPreferences, error) {
	prefs, err := u.prefsRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		// First-time user, serve defaults without writing anything.
		return preferencesdomain.Defaults(userID), nil
	}
	if prefs.ProtectedSenders == nil {
		prefs.ProtectedSenders = []string{}
	}
	return prefs, nil
}

func (u *preferencesUsecase) Update(userID string, input UpdateInput) (*preferencesdomain.UserPreferences, error) {
	if input.Aggressiveness != nil && !preferencesdomain.IsValidAggressiveness(*input.Aggressiveness) {
		return nil, ErrInvalidAggressiveness
	}

	current, err := u.prefsRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = preferencesdomain.Defaults(userID)
	}

	if input.Aggressiveness != nil {
		current.Aggressiveness = *input.Aggressiveness
	}
	if input.ProtectedSenders != nil {
		current.ProtectedSenders = *input.ProtectedSenders
	}
	if input.NotifyOnComplete != nil {
		current.NotifyOnComplete = *input.NotifyOnComplete
	}

	if err := u.prefsRepo.Upsert(current); err != nil {
		return nil, err
	}

	// Return the row as stored, not the merged struct we happened to write.
	updated, err := u.prefsRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return current, nil
	}
	if updated.ProtectedSenders == nil {
		updated.ProtectedSenders = []string{}
	}
	return updated, nil
}
