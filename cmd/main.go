package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"reviewhub/internal/ai"
	"reviewhub/internal/cache"
	"reviewhub/internal/config"
	"reviewhub/internal/handler"
	"reviewhub/internal/middleware"
	"reviewhub/internal/repository"
	"reviewhub/internal/router"
	"reviewhub/internal/service"
	"reviewhub/internal/sms"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	// pgx pool
	dbpool, err := pgxpool.New(context.Background(), cfg.DBConnString)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer dbpool.Close()

	// redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})
	redisCache := cache.New(rdb)

	// jwt
	pub, err := middleware.LoadRSAPublicKeyFromPEM(cfg.JWTPublicKeyPath)
	if err != nil {
		logger.Fatal("load jwt public key", zap.Error(err))
	}
	verifier := middleware.NewVerifier(pub, cfg.JWTIssuer, cfg.JWTAudience)
	auth := middleware.NewAuthMiddleware(verifier)

	// clients
	smsClient := sms.NewClient(cfg.SMSBaseURL, cfg.SMSToken, cfg.SMSSenderID, cfg.SMSTimeout, logger)
	aiClient := ai.NewClient(cfg.AIBaseURL, cfg.AIKey, cfg.AIModel, cfg.AITimeout, logger)

	// repos & services
	otpRepo := repository.NewOTPRepo(dbpool)
	profileRepo := repository.NewProfileRepo(dbpool)
	reviewRepo := repository.NewReviewRepo(dbpool)
	configRepo := repository.NewConfigRepo(dbpool)

	otpSvc := service.NewOTPService(otpStore{otpRepo, profileRepo}, smsClient, cfg.OTP, logger)
	reviewSvc := service.NewReviewService(reviewRepo, profileRepo, aiClient, logger)
	configSvc := service.NewConfigService(configRepo, redisCache, cfg.ConfigCacheTTL, logger)

	// handlers & routes
	otpHandler := handler.NewOTPHandler(otpSvc, cfg.OTP.CountryCode)
	reviewHandler := handler.NewReviewHandler(reviewSvc)
	aiHandler := handler.NewAIHandler(aiClient, logger)
	configHandler := handler.NewConfigHandler(configSvc)

	r := chi.NewRouter()
	router.SetupRoutes(r, otpHandler, reviewHandler, aiHandler, configHandler, auth, rdb)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		logger.Info("reviewhub listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http serve", zap.Error(err))
		}
	}()

	// graceful stop
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

// otpStore glues the challenge/rate repo and the profile repo into the
// single store surface the state machine consumes.
type otpStore struct {
	*repository.OTPRepo
	*repository.ProfileRepo
}
