package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dvasic/resumecraft-api/internal/ai"
	"github.com/dvasic/resumecraft-api/internal/config"
	"github.com/dvasic/resumecraft-api/internal/database"
	"github.com/dvasic/resumecraft-api/internal/handlers"
	authmw "github.com/dvasic/resumecraft-api/internal/middleware"
	"github.com/dvasic/resumecraft-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	userService := services.NewUserService(db)
	tokenService := services.NewTokenService(db)
	resumeService := services.NewResumeService(db)
	emailService := services.NewEmailService(cfg.SMTP)
	aiClient := ai.NewClient(cfg.Gemini)

	authHandler := handlers.NewAuthHandler(userService, tokenService, jwtService, logger)
	resumeHandler := handlers.NewResumeHandler(resumeService, logger)
	emailHandler := handlers.NewEmailHandler(emailService, cfg.FrontendURL, logger)
	aiHandler := handlers.NewAIHandler(aiClient, logger)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)

	protected := api.Group("")
	protected.Use(authmw.Auth(jwtService))

	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/profile", authHandler.UpdateProfile)
	protected.Put("/auth/password", authHandler.ChangePassword)
	protected.Post("/auth/logout-all", authHandler.LogoutAll)

	protected.Get("/resumes", resumeHandler.List)
	protected.Post("/resumes", resumeHandler.Create)
	protected.Get("/resumes/:id", resumeHandler.Get)
	protected.Put("/resumes/:id", resumeHandler.Update)
	protected.Delete("/resumes/:id", resumeHandler.Delete)
	protected.Get("/resumes/:id/versions", resumeHandler.Versions)
	protected.Post("/resumes/:id/duplicate", resumeHandler.Duplicate)
	protected.Put("/resumes/:id/toggle", resumeHandler.ToggleActive)

	protected.Post("/email/share-resume", emailHandler.ShareResume)
	protected.Post("/ai/suggest", aiHandler.Suggest)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			_ = tokenService.CleanupExpired(context.Background())
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info("server starting", zap.String("addr", addr))
		if err := app.Run(addr); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
}
