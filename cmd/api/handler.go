package api

import (
	authUsecase "umi-backend/internal/auth/usecase"
	cleanupUsecase "umi-backend/internal/cleanup/usecase"
	connectionUsecase "umi-backend/internal/connection/usecase"
	preferencesUsecase "umi-backend/internal/preferences/usecase"
	"umi-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase        authUsecase.AuthUsecase
	connectionUsecase  connectionUsecase.ConnectionUsecase
	preferencesUsecase preferencesUsecase.PreferencesUsecase
	cleanupUsecase     cleanupUsecase.CleanupUsecase
	config             *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, connectionUc connectionUsecase.ConnectionUsecase, preferencesUc preferencesUsecase.PreferencesUsecase, cleanupUc cleanupUsecase.CleanupUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:        authUc,
		connectionUsecase:  connectionUc,
		preferencesUsecase: preferencesUc,
		cleanupUsecase:     cleanupUc,
		config:             cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	r.Use(h.corsMiddleware())

	SetupRoutes(r, h.authUsecase, h.connectionUsecase, h.preferencesUsecase, h.cleanupUsecase)

	return r.Run(addr)
}

// corsMiddleware pins the allowed origin to the configured frontend URL when
// one is set, and falls back to echoing the request origin in development.
func (h *Handler) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		switch {
		case h.config.FrontendURL != "":
			c.Writer.Header().Set("Access-Control-Allow-Origin", h.config.FrontendURL)
		case origin != "":
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		default:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
