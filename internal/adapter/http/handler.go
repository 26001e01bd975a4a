package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"openapp-ads/internal/core/port"
)

// Services bundles the usecases the HTTP layer exposes.
type Services struct {
	Campaigns port.CampaignUseCase
	HouseAds  port.HouseAdUseCase
	Keys      port.APIKeyUseCase
	Tracking  port.TrackingUseCase
	Selection port.SelectionUseCase
	Serve     port.ServeUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: the external /servead wire contract plus the /api/v1 management
// and embedded-client surface. Routes are registered on a chi.Router.
type Handler struct {
	svc           Services
	requireAPIKey bool
	logger        *slog.Logger
	router        chi.Router
}

// NewHandler creates a handler with all routes configured. requireAPIKey
// hardens /servead to reject calls without an x-api-key header.
func NewHandler(svc Services, requireAPIKey bool, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, requireAPIKey: requireAPIKey, logger: logger}
	r := chi.NewRouter()

	// External integrator contract. One handler owns the whole method
	// surface so unknown verbs get the JSON 405 the contract promises.
	r.HandleFunc("/servead", h.handleServeAd)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Patch("/{id}", h.handleUpdateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
			// Transition usecases are resolved per request so a handler
			// wired for serving alone can still be constructed.
			r.Post("/{id}/approve", h.statusHandler(func(ctx context.Context, id string) error {
				return h.svc.Campaigns.ApproveCampaign(ctx, id)
			}))
			r.Post("/{id}/reject", h.statusHandler(func(ctx context.Context, id string) error {
				return h.svc.Campaigns.RejectCampaign(ctx, id)
			}))
			r.Post("/{id}/pause", h.statusHandler(func(ctx context.Context, id string) error {
				return h.svc.Campaigns.PauseCampaign(ctx, id)
			}))
			r.Post("/{id}/resume", h.statusHandler(func(ctx context.Context, id string) error {
				return h.svc.Campaigns.ResumeCampaign(ctx, id)
			}))
		})

		r.Route("/ads", func(r chi.Router) {
			r.Get("/active", h.handleListActiveHouseAds)
			r.Get("/", h.handleListHouseAds)
			r.Post("/", h.handleCreateHouseAd)
			r.Post("/{id}/deactivate", h.handleDeactivateHouseAd)
			r.Delete("/{id}", h.handleDeleteHouseAd)
		})

		r.Route("/ad", func(r chi.Router) {
			r.Post("/select", h.handleSelect)
			r.Get("/banner-feed", h.handleBannerFeed)
			r.Post("/event", h.handleClientEvent)
		})

		r.Route("/keys", func(r chi.Router) {
			r.Get("/", h.handleListAPIKeys)
			r.Post("/", h.handleCreateAPIKey)
			r.Delete("/{id}", h.handleDeleteAPIKey)
		})

		r.Get("/stats/overview", h.handleStatsOverview)
		r.Get("/stats/events", h.handleStatsEvents)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// writeUseCaseError maps domain errors onto HTTP statuses; anything
// unrecognized is logged and reported as a 500.
func (h *Handler) writeUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, port.ErrInvalidTransition),
		errors.Is(err, port.ErrAdTypeImmutable),
		errors.Is(err, port.ErrEventNotAllowed):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrPaymentRequired):
		h.writeError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, port.ErrInvalidAPIKey):
		h.writeError(w, http.StatusUnauthorized, "Invalid API key")
	default:
		h.logger.Error("usecase error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
