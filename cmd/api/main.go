package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"groupnest/config"
	"groupnest/internal/adapters/auth"
	"groupnest/internal/adapters/email"
	httpdelivery "groupnest/internal/delivery/http"
	"groupnest/internal/delivery/http/controllers"
	"groupnest/internal/delivery/http/middleware"
	"groupnest/internal/repository/postgres"
	"groupnest/internal/scheduler"
	"groupnest/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title GroupNest API
// @version 1.0
// @description Group event coordination backend with deferred email notifications.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	eventRepo := postgres.NewEventRepository(db)
	membershipRepo := postgres.NewMembershipRepository(db)
	userRepo := postgres.NewUserRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureTLS,
		},
	})
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}

	dispatch := scheduler.NewTimerScheduler(logger)
	defer dispatch.Stop()

	emailService := services.NewEmailService(mailer)
	eventService := services.NewEventService(eventRepo, membershipRepo, emailService, dispatch, logger, serviceTimeout)

	tokens := auth.NewJWTTokens(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokens, cfg.JWTExpiry)

	eventController := controllers.NewEventController(logger, eventService)
	authController := controllers.NewAuthController(logger, authService)

	mux := httpdelivery.NewRouter(eventController, authController, tokens)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
