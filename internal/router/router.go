package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"autobid-server/internal/config"
	"autobid-server/internal/handler"
	"autobid-server/internal/middleware"
)

type Handlers struct {
	Auth   *handler.AuthHandler
	Car    *handler.CarHandler
	Bid    *handler.BidHandler
	Health *handler.HealthHandler
}

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	h Handlers,
	metricsHandler http.Handler,
	metricsMiddleware func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(metricsMiddleware)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/", h.Health.Root)
	r.Get("/health", h.Health.Check)
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	// Session
	r.Post("/jwt", h.Auth.CreateSession)
	r.Post("/logout", h.Auth.Logout)

	// Catalog
	r.Get("/all-cars", h.Car.List)
	r.Get("/cars-count", h.Car.Count)
	r.Get("/cars", h.Car.GetAll)
	r.With(authMiddleware.RequireAuth).Get("/car/{id}", h.Car.GetByID)
	r.With(authMiddleware.RequireAuth).Post("/car", h.Car.Create)
	r.With(authMiddleware.RequireAuth).Get("/cars/{email}", h.Car.ListForOwner)
	r.With(authMiddleware.RequireAuth).Put("/car/{id}", h.Car.Update)
	r.With(authMiddleware.RequireAuth).Delete("/car/{id}", h.Car.Delete)

	// Bids
	r.With(authMiddleware.RequireAuth).Post("/bid", h.Bid.Place)
	r.With(authMiddleware.RequireAuth).Get("/my-bids/{email}", h.Bid.MyBids)
	r.With(authMiddleware.RequireAuth).Get("/my-request/{email}", h.Bid.MyRequests)
	r.With(authMiddleware.RequireAuth).Patch("/bid/{id}", h.Bid.UpdateStatus)

	return r
}
