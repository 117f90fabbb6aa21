package api

import (
	"net/http"

	authDelivery "umi-backend/internal/auth/delivery"
	authUsecase "umi-backend/internal/auth/usecase"
	cleanupDelivery "umi-backend/internal/cleanup/delivery"
	cleanupUsecase "umi-backend/internal/cleanup/usecase"
	connectionDelivery "umi-backend/internal/connection/delivery"
	connectionUsecase "umi-backend/internal/connection/usecase"
	preferencesDelivery "umi-backend/internal/preferences/delivery"
	preferencesUsecase "umi-backend/internal/preferences/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, connectionUc connectionUsecase.ConnectionUsecase, preferencesUc preferencesUsecase.PreferencesUsecase, cleanupUc cleanupUsecase.CleanupUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	connectionHandler := connectionDelivery.NewConnectionHandler(connectionUc)
	preferencesHandler := preferencesDelivery.NewPreferencesHandler(preferencesUc)
	cleanupHandler := cleanupDelivery.NewCleanupHandler(cleanupUc)

	authRequired := authDelivery.AuthMiddleware(authUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		auth.Use(authRequired)
		{
			auth.GET("/widget-token", authHandler.WidgetToken)
		}

		// Gmail connection routes (protected)
		gmail := api.Group("/gmail")
		gmail.Use(authRequired)
		{
			gmail.GET("/status", connectionHandler.GetStatus)
			gmail.GET("/token", connectionHandler.GetToken)
		}

		// Preferences routes (protected)
		preferences := api.Group("/preferences")
		preferences.Use(authRequired)
		{
			preferences.GET("", preferencesHandler.GetPreferences)
			preferences.PUT("", preferencesHandler.UpdatePreferences)
		}

		// Scan and cleanup routes (protected)
		api.POST("/scan", authRequired, cleanupHandler.Scan)
		api.POST("/cleanup", authRequired, cleanupHandler.Cleanup)
	}
}
