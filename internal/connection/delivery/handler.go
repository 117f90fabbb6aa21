package delivery

import (
	"net/http"

	connectiondomain "umi-backend/internal/connection/domain"
	connectiondto "umi-backend/internal/connection/dto"
	"umi-backend/internal/connection/usecase"

	"github.com/gin-gonic/gin"
)

type ConnectionHandler struct {
	connectionUsecase usecase.ConnectionUsecase
}

func NewConnectionHandler(connectionUsecase usecase.ConnectionUsecase) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUsecase: connectionUsecase,
	}
}

// GetStatus reports whether the user's Gmail account is connected. This is
// advisory for UI rendering only; upstream trouble still answers 200 so the
// client can render the connect affordance instead of a failure page.
func (h *ConnectionHandler) GetStatus(c *gin.Context) {
	userID := c.GetString("userID")

	status := h.connectionUsecase.Resolve(c.Request.Context(), userID)

	resp := connectiondto.StatusResponse{IsConnected: status.IsConnected()}
	if status.Reason != "" {
		reason := status.Reason
		resp.Error = &reason
	}

	c.JSON(http.StatusOK, resp)
}

// GetToken returns the Gmail access token for callers that need to act on the
// user's behalf. Status is re-derived on every call, never cached.
func (h *ConnectionHandler) GetToken(c *gin.Context) {
	userID := c.GetString("userID")

	status := h.connectionUsecase.Resolve(c.Request.Context(), userID)

	if !status.IsConnected() {
		code := status.Reason
		if code == "" || code == connectiondomain.ReasonNotConnected {
			code = "token_retrieval_failed"
		}
		c.JSON(http.StatusUnauthorized, connectiondto.TokenErrorResponse{
			Error:         code,
			MissingScopes: []string{},
		})
		return
	}

	c.JSON(http.StatusOK, connectiondto.TokenResponse{
		AccessToken: status.Token.Token,
		ExpiresAt:   status.Token.ExpiresAt,
	})
}
