// Package api provides the HTTP server exposing the habit engine to the
// UI layer: derived values, engine operations, settings, and missions.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leetboo/leetboo/internal/app/entitlement"
	"github.com/leetboo/leetboo/internal/app/habit"
	"github.com/leetboo/leetboo/internal/app/notify"
)

// Server is the LeetBoo HTTP API server.
type Server struct {
	engine         *habit.Engine
	planner        *notify.Planner
	scheduler      notify.Scheduler
	entitlements   entitlement.Service
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(engine *habit.Engine, planner *notify.Planner, scheduler notify.Scheduler, ent entitlement.Service) *Server {
	return &Server{
		engine:       engine,
		planner:      planner,
		scheduler:    scheduler,
		entitlements: ent,
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", s.handleListActivities)
			r.Post("/{type}/toggle", s.handleToggle)
			r.Post("/{type}/confirm", s.handleConfirm)
			r.Post("/{type}/dismiss", s.handleDismiss)
			r.Get("/{type}/streak", s.handleStreak)
			r.Get("/{type}/missed", s.handleMissedDates)
		})

		r.Post("/log", s.handleLog)

		r.Put("/target", s.handleSetTarget)
		r.Put("/coins", s.handleSetCoins)
		r.Post("/coins/add", s.handleAddCoins)
		r.Put("/rate", s.handleSetRate)

		r.Route("/settings/notifications", func(r chi.Router) {
			r.Get("/", s.handleGetSettings)
			r.Put("/", s.handlePutSettings)
		})

		r.Route("/missions", func(r chi.Router) {
			r.Get("/{key}", s.handleMissionStatus)
			r.Post("/{key}/complete", s.handleCompleteMission)
			r.Get("/weekly/{key}", s.handleWeeklyMissionStatus)
			r.Post("/weekly/{key}/complete", s.handleCompleteWeeklyMission)
			r.Get("/weekly/{key}/missed", s.handleMissedWeekly)
		})

		r.Get("/notifications/pending", s.handlePendingNotifications)

		r.Route("/subscription", func(r chi.Router) {
			r.Get("/", s.handleSubscription)
			r.Post("/purchase", s.handlePurchase)
			r.Post("/restore", s.handleRestore)
		})
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for the local UI.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
