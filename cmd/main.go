package main

import (
	"context"

	"github.com/Memo977/KidsTube-Backendv2/config"
	"github.com/Memo977/KidsTube-Backendv2/db"
	"github.com/Memo977/KidsTube-Backendv2/internal/auth/handler"
	repo "github.com/Memo977/KidsTube-Backendv2/internal/auth/repository/postgres"
	"github.com/Memo977/KidsTube-Backendv2/internal/auth/service"
	"github.com/Memo977/KidsTube-Backendv2/internal/auth/session"
	"github.com/Memo977/KidsTube-Backendv2/internal/cache"
	"github.com/Memo977/KidsTube-Backendv2/internal/logger"
	"github.com/Memo977/KidsTube-Backendv2/internal/mailer"
	"github.com/Memo977/KidsTube-Backendv2/internal/verify"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.Env)
	defer logger.Sync()
	log := logger.Named("main")

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer dbPool.Close()

	store, err := cache.New(cache.Config{
		Driver:   cfg.CacheDriver,
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		Prefix:   "kidstube",
	})
	if err != nil {
		log.Fatal("cache initialization failed", zap.Error(err))
	}
	defer store.Close()

	accountRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.StepTokenExpiryMin, cfg.SessionTokenExpiryMin)
	verifier := verify.NewTwilioVerifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioVerifyServiceSID)
	registry := session.NewRegistry(store)
	ledger := session.NewLedger(store)
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom, cfg.FrontendURL)

	authService := service.NewAuthService(accountRepo, tokenService, verifier, registry, ledger, smtpMailer)
	authHandler := handler.NewAuthHandler(authService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	log.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
