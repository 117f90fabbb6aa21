package delivery

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	preferencesRepo "umi-backend/internal/preferences/repository"
	"umi-backend/internal/preferences/usecase"

	preferencesdomain "umi-backend/internal/preferences/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// memoryRepository backs the handler tests without a database.
type memoryRepository struct {
	rows map[string]preferencesdomain.UserPreferences
}

func (m *memoryRepository) FindByUserID(userID string) (*preferencesdomain.UserPreferences, error) {
	row, ok := m.rows[userID]
	if !ok {
		return nil, nil
	}
	copied := row
	return &copied, nil
}

func (m *memoryRepository) Upsert(prefs *preferencesdomain.UserPreferences) error {
	m.rows[prefs.UserID] = *prefs
	return nil
}

var _ preferencesRepo.PreferencesRepository = (*memoryRepository)(nil)

func setupRouter() (*gin.Engine, *memoryRepository) {
	gin.SetMode(gin.TestMode)
	repo := &memoryRepository{rows: make(map[string]preferencesdomain.UserPreferences)}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "user_123")
	})

	handler := NewPreferencesHandler(usecase.NewPreferencesUsecase(repo))
	r.GET("/api/preferences", handler.GetPreferences)
	r.PUT("/api/preferences", handler.UpdatePreferences)
	return r, repo
}

func TestGetPreferences(t *testing.T) {
	t.Run("first-time user gets defaults", func(t *testing.T) {
		r, repo := setupRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/preferences", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"aggressiveness": "aggressive", "protectedSenders": [], "notifyOnComplete": true}`, w.Body.String())
		assert.Empty(t, repo.rows, "a read must not create a row")
	})
}

func TestUpdatePreferences(t *testing.T) {
	t.Run("full update round trip", func(t *testing.T) {
		r, _ := setupRouter()

		w := httptest.NewRecorder()
		body := `{"aggressiveness": "conservative", "protectedSenders": ["boss@example.com"], "notifyOnComplete": false}`
		req := httptest.NewRequest(http.MethodPut, "/api/preferences", strings.NewReader(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"aggressiveness": "conservative", "protectedSenders": ["boss@example.com"], "notifyOnComplete": false}`, w.Body.String())
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		r, _ := setupRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/preferences", strings.NewReader(`{"notifyOnComplete": false}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"aggressiveness": "aggressive", "protectedSenders": [], "notifyOnComplete": false}`, w.Body.String())
	})

	t.Run("invalid aggressiveness is rejected", func(t *testing.T) {
		r, repo := setupRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/preferences", strings.NewReader(`{"aggressiveness": "extreme"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, repo.rows)
	})

	t.Run("non-list protectedSenders is rejected", func(t *testing.T) {
		r, _ := setupRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/preferences", strings.NewReader(`{"protectedSenders": "boss@example.com"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
