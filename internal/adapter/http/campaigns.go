package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port"
)

type createCampaignRequest struct {
	OwnerID          string           `json:"owner_id"`
	AppID            *string          `json:"app_id"`
	Name             string           `json:"name"`
	AdType           string           `json:"ad_type"`
	MediaURL         string           `json:"media_url"`
	MediaType        string           `json:"media_type"`
	DestinationURL   string           `json:"destination_url"`
	Title            *string          `json:"title"`
	Description      *string          `json:"description"`
	DurationDays     int              `json:"duration_days"`
	SkipAfterSeconds *int             `json:"skip_after_seconds"`
	RewardAmount     *decimal.Decimal `json:"reward_amount"`
}

type updateCampaignRequest struct {
	// AdType is captured only to reject attempts to change it.
	AdType           *string          `json:"ad_type"`
	Name             *string          `json:"name"`
	MediaURL         *string          `json:"media_url"`
	MediaType        *string          `json:"media_type"`
	DestinationURL   *string          `json:"destination_url"`
	Title            *string          `json:"title"`
	Description      *string          `json:"description"`
	SkipAfterSeconds *int             `json:"skip_after_seconds"`
	RewardAmount     *decimal.Decimal `json:"reward_amount"`
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var ownerID *string
	if v := r.URL.Query().Get("owner_id"); v != "" {
		ownerID = &v
	}
	campaigns, err := h.svc.Campaigns.ListCampaigns(r.Context(), ownerID)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.OwnerID == "" || body.Name == "" || body.MediaURL == "" || body.DurationDays == 0 {
		h.writeError(w, http.StatusBadRequest, "owner_id, name, media_url and duration_days are required")
		return
	}
	campaign, err := h.svc.Campaigns.CreateCampaign(r.Context(), port.CreateCampaignReq{
		OwnerID:          body.OwnerID,
		AppID:            body.AppID,
		Name:             body.Name,
		AdType:           domain.AdType(body.AdType),
		MediaURL:         body.MediaURL,
		MediaType:        domain.MediaType(body.MediaType),
		DestinationURL:   body.DestinationURL,
		Title:            body.Title,
		Description:      body.Description,
		DurationDays:     body.DurationDays,
		SkipAfterSeconds: body.SkipAfterSeconds,
		RewardAmount:     body.RewardAmount,
	})
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, campaign)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body updateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.AdType != nil {
		h.writeUseCaseError(w, port.ErrAdTypeImmutable)
		return
	}
	patch := port.CampaignPatch{
		Name:             body.Name,
		MediaURL:         body.MediaURL,
		DestinationURL:   body.DestinationURL,
		Title:            body.Title,
		Description:      body.Description,
		SkipAfterSeconds: body.SkipAfterSeconds,
		RewardAmount:     body.RewardAmount,
	}
	if body.MediaType != nil {
		mt := domain.MediaType(*body.MediaType)
		patch.MediaType = &mt
	}
	campaign, err := h.svc.Campaigns.UpdateCampaign(r.Context(), id, patch)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaign)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Campaigns.DeleteCampaign(r.Context(), id); err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// statusHandler adapts a lifecycle transition method into an HTTP handler.
func (h *Handler) statusHandler(fn func(ctx context.Context, id string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := fn(r.Context(), id); err != nil {
			h.writeUseCaseError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
