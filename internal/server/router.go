// Package server assembles the HTTP router.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/fkhayef/tripsplit/docs"
	"github.com/fkhayef/tripsplit/internal/participant"
	"github.com/fkhayef/tripsplit/internal/payment"
	"github.com/fkhayef/tripsplit/internal/settlement"
	"github.com/fkhayef/tripsplit/internal/trip"
	mw "github.com/fkhayef/tripsplit/pkg/middleware"
	"github.com/fkhayef/tripsplit/pkg/response"
)

// Handlers groups the feature handlers mounted by the router
type Handlers struct {
	Trips        *trip.Handler
	Participants *participant.Handler
	Payments     *payment.Handler
	Summaries    *settlement.Handler
}

// NewRouter returns the chi router with middleware and every route mounted.
// allowedOrigins feeds the CORS policy; "*" allows any origin.
func NewRouter(h Handlers, logger *zap.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(mw.Metrics)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/trips", h.Trips.Routes(map[string]http.Handler{
			"/participants": h.Participants.Routes(),
			"/payments":     h.Payments.Routes(),
			"/summary":      h.Summaries.Routes(),
		}))
	})

	return r
}
