package main

import (
	"log"

	api "umi-backend/cmd/api"
	authUsecase "umi-backend/internal/auth/usecase"
	cleanupUsecase "umi-backend/internal/cleanup/usecase"
	connectionUsecase "umi-backend/internal/connection/usecase"
	preferencesdomain "umi-backend/internal/preferences/domain"
	preferencesRepo "umi-backend/internal/preferences/repository"
	preferencesUsecase "umi-backend/internal/preferences/usecase"
	"umi-backend/pkg/audit"
	"umi-backend/pkg/config"
	"umi-backend/pkg/database"
	"umi-backend/pkg/fcm"
	"umi-backend/pkg/gmail"
	"umi-backend/pkg/pipes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&preferencesdomain.UserPreferences{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	prefsRepo := preferencesRepo.NewPreferencesRepository(db)

	// Initialize upstream clients
	pipesClient := pipes.NewClient(cfg.WorkOSAPIKey, cfg.WorkOSBaseURL)
	auditEmitter := audit.NewEmitter(cfg.WorkOSAPIKey, cfg.WorkOSBaseURL)
	gmailService := gmail.NewService()

	// Initialize FCM client (optional, cleanup notifications work without it)
	var notifier cleanupUsecase.Notifier
	if cfg.FirebaseCredentials != "" {
		fcmClient, err := fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
		} else {
			notifier = fcmClient
		}
	} else {
		log.Printf("[WARN] No Firebase credentials configured, FCM disabled")
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(cfg)
	connectionUsecaseInstance := connectionUsecase.NewConnectionUsecase(pipesClient)
	preferencesUsecaseInstance := preferencesUsecase.NewPreferencesUsecase(prefsRepo)
	cleanupUsecaseInstance := cleanupUsecase.NewCleanupUsecase(connectionUsecaseInstance, preferencesUsecaseInstance, gmailService, auditEmitter, notifier)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, connectionUsecaseInstance, preferencesUsecaseInstance, cleanupUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
