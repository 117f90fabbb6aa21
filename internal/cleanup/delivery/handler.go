package delivery

import (
	"errors"
	"net/http"

	authdomain "umi-backend/internal/auth/domain"
	cleanupdto "umi-backend/internal/cleanup/dto"
	"umi-backend/internal/cleanup/usecase"

	"github.com/gin-gonic/gin"
)

type CleanupHandler struct {
	cleanupUsecase usecase.CleanupUsecase
}

func NewCleanupHandler(cleanupUsecase usecase.CleanupUsecase) *CleanupHandler {
	return &CleanupHandler{
		cleanupUsecase: cleanupUsecase,
	}
}

func (h *CleanupHandler) Scan(c *gin.Context) {
	session := sessionFromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}

	result, err := h.cleanupUsecase.Scan(c.Request.Context(), session)
	if err != nil {
		if errors.Is(err, usecase.ErrNotConnected) {
			c.JSON(http.StatusConflict, gin.H{"error": "gmail_not_connected"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CleanupHandler) Cleanup(c *gin.Context) {
	session := sessionFromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}

	// Body is optional; a missing one means no device to notify.
	var req cleanupdto.CleanupRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.cleanupUsecase.Cleanup(c.Request.Context(), session, req.DeviceToken)
	if err != nil {
		if errors.Is(err, usecase.ErrNotConnected) {
			c.JSON(http.StatusConflict, gin.H{"error": "gmail_not_connected"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func sessionFromContext(c *gin.Context) *authdomain.Session {
	value, exists := c.Get("session")
	if !exists {
		return nil
	}
	session, ok := value.(*authdomain.Session)
	if !ok {
		return nil
	}
	return session
}
