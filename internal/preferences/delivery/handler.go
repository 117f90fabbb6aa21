package delivery

import (
	"errors"
	"net/http"

	preferencesdomain "umi-backend/internal/preferences/domain"
	preferencesdto "umi-backend/internal/preferences/dto"
	"umi-backend/internal/preferences/usecase"

	"github.com/gin-gonic/gin"
)

type PreferencesHandler struct {
	preferencesUsecase usecase.PreferencesUsecase
}

func NewPreferencesHandler(preferencesUsecase usecase.PreferencesUsecase) *PreferencesHandler {
	return &PreferencesHandler{
		preferencesUsecase: preferencesUsecase,
	}
}

func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	userID := c.GetString("userID")

	prefs, err := h.preferencesUsecase.Get(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toResponse(prefs))
}

func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	userID := c.GetString("userID")

	var req preferencesdto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := h.preferencesUsecase.Update(userID, usecase.UpdateInput{
		Aggressiveness:   req.Aggressiveness,
		ProtectedSenders: req.ProtectedSenders,
		NotifyOnComplete: req.NotifyOnComplete,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAggressiveness) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toResponse(prefs))
}

func toResponse(prefs *preferencesdomain.UserPreferences) preferencesdto.PreferencesResponse {
	senders := prefs.ProtectedSenders
	if senders == nil {
		senders = []string{}
	}
	return preferencesdto.PreferencesResponse{
		Aggressiveness:   prefs.Aggressiveness,
		ProtectedSenders: senders,
		NotifyOnComplete: prefs.NotifyOnComplete,
	}
}
