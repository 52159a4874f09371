package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"reviewhub/internal/handler"
	"reviewhub/internal/middleware"
)

func SetupRoutes(
	r chi.Router,
	otp *handler.OTPHandler,
	reviews *handler.ReviewHandler,
	aiH *handler.AIHandler,
	cfg *handler.ConfigHandler,
	auth *middleware.AuthMiddleware,
	rdb redis.UniversalClient,
) chi.Router {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.RateLimiter(rdb, 100, time.Minute, 10*time.Minute, "global"))

	// Public: browsing and static content need no account.
	r.Group(func(pub chi.Router) {
		pub.Get("/v1/reviews", reviews.HandleList)
		pub.Get("/v1/reviews/{id}/comments", reviews.HandleListComments)
		pub.Get("/v1/search", reviews.HandleSearch)
		pub.Get("/v1/config/categories", cfg.HandleCategories)
		pub.Get("/v1/legal", cfg.HandleLegalIndex)
		pub.Get("/v1/legal/{doc}", cfg.HandleLegalDoc)
	})

	// Protected: every write path requires a verified caller identity
	// before any state is touched.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.Require)

		pr.Post("/v1/otp/request", otp.HandleRequestOTP)
		pr.Post("/v1/otp/verify", otp.HandleVerifyOTP)

		pr.Post("/v1/reviews", reviews.HandleCreate)
		pr.Get("/v1/reviews/mine", reviews.HandleListMine)
		pr.Post("/v1/reviews/{id}/vote", reviews.HandleVote)
		pr.Post("/v1/reviews/{id}/comments", reviews.HandleAddComment)
		pr.Post("/v1/reviews/{id}/report", reviews.HandleReport)
	})

	// AI endpoints are expensive; tighter window on top of auth.
	r.Group(func(air chi.Router) {
		air.Use(auth.Require)
		air.Use(middleware.RateLimiter(rdb, 10, time.Minute, 5*time.Minute, "ai"))

		air.Post("/v1/ai/toxicity", aiH.HandleToxicity)
		air.Post("/v1/ai/search", aiH.HandleGlobalSearch)
	})

	return r
}
