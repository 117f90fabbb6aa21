package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	connectiondomain "umi-backend/internal/connection/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConnectionUsecase struct {
	status connectiondomain.Status
}

func (f *fakeConnectionUsecase) Resolve(ctx context.Context, userID string) connectiondomain.Status {
	return f.status
}

func setupRouter(status connectiondomain.Status) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "user_123")
	})

	handler := NewConnectionHandler(&fakeConnectionUsecase{status: status})
	r.GET("/api/gmail/status", handler.GetStatus)
	r.GET("/api/gmail/token", handler.GetToken)
	return r
}

func TestGetStatus(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		r := setupRouter(connectiondomain.Status{
			State: connectiondomain.StateConnected,
			Token: &connectiondomain.AccessToken{Token: "abc"},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/gmail/status", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"isConnected": true, "error": null}`, w.Body.String())
	})

	t.Run("upstream trouble still answers 200", func(t *testing.T) {
		r := setupRouter(connectiondomain.Status{
			State:  connectiondomain.StateNotConnected,
			Reason: connectiondomain.ReasonNotConnected,
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/gmail/status", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"isConnected": false, "error": "not_connected"}`, w.Body.String())
	})

	t.Run("provider error code is passed through", func(t *testing.T) {
		r := setupRouter(connectiondomain.Status{
			State:  connectiondomain.StateNotConnected,
			Reason: "connection_revoked",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/gmail/status", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"isConnected": false, "error": "connection_revoked"}`, w.Body.String())
	})
}

func TestGetToken(t *testing.T) {
	t.Run("connected returns the token", func(t *testing.T) {
		r := setupRouter(connectiondomain.Status{
			State: connectiondomain.StateConnected,
			Token: &connectiondomain.AccessToken{
				Token:     "abc",
				ExpiresAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/gmail/token", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "abc", body["accessToken"])
		assert.Equal(t, "2025-01-01T00:00:00Z", body["expiresAt"])
	})

	t.Run("transport sentinel maps to token_retrieval_failed", func(t *testing.T) {
		r := setupRouter(connectiondomain.Status{
			State:  connectiondomain.StateNotConnected,
			Reason: connectiondomain.ReasonNotConnected,
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/gmail/token", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error": "token_retrieval_failed", "missingScopes": []}`, w.Body.String())
	})

	t.Run("provider error code survives as the error", func(t *testing.T) {
		r := setupRouter(connectiondomain.Status{
			State:  connectiondomain.StateNotConnected,
			Reason: "no_token",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/gmail/token", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error": "no_token", "missingScopes": []}`, w.Body.String())
	})
}
