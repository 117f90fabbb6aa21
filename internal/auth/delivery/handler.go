package delivery

import (
	"net/http"

	authdomain "umi-backend/internal/auth/domain"
	"umi-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// WidgetToken mints the short-lived session token the embedded connection
// widget authorizes with. The client fetches it lazily, right when the
// widget opens.
func (h *AuthHandler) WidgetToken(c *gin.Context) {
	value, exists := c.Get("session")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}
	session := value.(*authdomain.Session)

	token, expiresAt, err := h.authUsecase.IssueWidgetToken(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresAt": expiresAt,
	})
}
