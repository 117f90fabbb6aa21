package usecase

import (
	"testing"
	"time"

	preferencesdomain "umi-backend/internal/preferences/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePreferencesRepository keeps rows in memory with upsert semantics.
type fakePreferencesRepository struct {
	rows    map[string]preferencesdomain.UserPreferences
	upserts int
}

func newFakeRepo() *fakePreferencesRepository {
	return &fakePreferencesRepository{rows: make(map[string]preferencesdomain.UserPreferences)}
}

func (f *fakePreferencesRepository) FindByUserID(userID string) (*preferencesdomain.UserPreferences, error) {
	row, ok := f.rows[userID]
	if !ok {
		return nil, nil
	}
	copied := row
	return &copied, nil
}

func (f *fakePreferencesRepository) Upsert(prefs *preferencesdomain.UserPreferences) error {
	f.upserts++
	now := time.Now()
	if prefs.CreatedAt.IsZero() {
		prefs.CreatedAt = now
	}
	prefs.UpdatedAt = now
	f.rows[prefs.UserID] = *prefs
	return nil
}

func strPtr(s string) *string      { return &s }
func boolPtr(b bool) *bool         { return &b }
func listPtr(l []string) *[]string { return &l }

func TestGet(t *testing.T) {
	t.Run("missing row returns defaults without creating one", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewPreferencesUsecase(repo)

		prefs, err := uc.Get("user_123")

		require.NoError(t, err)
		assert.Equal(t, preferencesdomain.AggressivenessAggressive, prefs.Aggressiveness)
		assert.Equal(t, []string{}, prefs.ProtectedSenders)
		assert.True(t, prefs.NotifyOnComplete)
		assert.Empty(t, repo.rows)
	})

	t.Run("existing row is returned as stored", func(t *testing.T) {
		repo := newFakeRepo()
		repo.rows["user_123"] = preferencesdomain.UserPreferences{
			UserID:           "user_123",
			Aggressiveness:   preferencesdomain.AggressivenessConservative,
			ProtectedSenders: []string{"boss@example.com"},
			NotifyOnComplete: false,
		}
		uc := NewPreferencesUsecase(repo)

		prefs, err := uc.Get("user_123")

		require.NoError(t, err)
		assert.Equal(t, preferencesdomain.AggressivenessConservative, prefs.Aggressiveness)
		assert.Equal(t, []string{"boss@example.com"}, prefs.ProtectedSenders)
		assert.False(t, prefs.NotifyOnComplete)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("invalid aggressiveness leaves the row unchanged", func(t *testing.T) {
		repo := newFakeRepo()
		repo.rows["user_123"] = preferencesdomain.UserPreferences{
			UserID:         "user_123",
			Aggressiveness: preferencesdomain.AggressivenessModerate,
		}
		uc := NewPreferencesUsecase(repo)

		_, err := uc.Update("user_123", UpdateInput{Aggressiveness: strPtr("extreme")})

		assert.ErrorIs(t, err, ErrInvalidAggressiveness)
		assert.Equal(t, 0, repo.upserts)
		assert.Equal(t, preferencesdomain.AggressivenessModerate, repo.rows["user_123"].Aggressiveness)
	})

	t.Run("first write creates the row from defaults", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewPreferencesUsecase(repo)

		prefs, err := uc.Update("user_123", UpdateInput{Aggressiveness: strPtr("moderate")})

		require.NoError(t, err)
		assert.Equal(t, preferencesdomain.AggressivenessModerate, prefs.Aggressiveness)
		// Fields not in the write keep their defaults.
		assert.Equal(t, []string{}, prefs.ProtectedSenders)
		assert.True(t, prefs.NotifyOnComplete)
		assert.Len(t, repo.rows, 1)
	})

	t.Run("partial update leaves omitted fields alone", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewPreferencesUsecase(repo)

		_, err := uc.Update("user_123", UpdateInput{
			Aggressiveness:   strPtr("conservative"),
			ProtectedSenders: listPtr([]string{"boss@example.com"}),
		})
		require.NoError(t, err)

		prefs, err := uc.Update("user_123", UpdateInput{NotifyOnComplete: boolPtr(false)})
		require.NoError(t, err)

		assert.Equal(t, preferencesdomain.AggressivenessConservative, prefs.Aggressiveness)
		assert.Equal(t, []string{"boss@example.com"}, prefs.ProtectedSenders)
		assert.False(t, prefs.NotifyOnComplete)

		stored, err := uc.Get("user_123")
		require.NoError(t, err)
		assert.False(t, stored.NotifyOnComplete)
		assert.Equal(t, preferencesdomain.AggressivenessConservative, stored.Aggressiveness)
	})

	t.Run("protected senders can be cleared with an empty list", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewPreferencesUsecase(repo)

		_, err := uc.Update("user_123", UpdateInput{ProtectedSenders: listPtr([]string{"a@example.com"})})
		require.NoError(t, err)

		prefs, err := uc.Update("user_123", UpdateInput{ProtectedSenders: listPtr([]string{})})
		require.NoError(t, err)

		assert.Equal(t, []string{}, prefs.ProtectedSenders)
	})
}
