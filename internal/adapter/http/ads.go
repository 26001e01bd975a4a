package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"openapp-ads/internal/core/domain"
)

type createHouseAdRequest struct {
	AppID            string  `json:"app_id"`
	OwnerID          string  `json:"owner_id"`
	VideoURL         string  `json:"video_url"`
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	SkipAfterSeconds *int    `json:"skip_after_seconds"`
	DurationSeconds  *int    `json:"duration_seconds"`
}

func (h *Handler) handleListActiveHouseAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.svc.HouseAds.ListActiveHouseAds(r.Context())
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ads)
}

func (h *Handler) handleListHouseAds(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		h.writeError(w, http.StatusBadRequest, "owner_id is required")
		return
	}
	ads, err := h.svc.HouseAds.ListHouseAdsByOwner(r.Context(), ownerID)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ads)
}

func (h *Handler) handleCreateHouseAd(w http.ResponseWriter, r *http.Request) {
	var body createHouseAdRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.AppID == "" || body.OwnerID == "" || body.VideoURL == "" {
		h.writeError(w, http.StatusBadRequest, "app_id, owner_id and video_url are required")
		return
	}
	ad := &domain.HouseAd{
		AppID:       body.AppID,
		OwnerID:     body.OwnerID,
		VideoURL:    body.VideoURL,
		Title:       body.Title,
		Description: body.Description,
	}
	if body.SkipAfterSeconds != nil {
		ad.SkipAfterSeconds = *body.SkipAfterSeconds
	}
	ad.DurationSeconds = body.DurationSeconds
	created, err := h.svc.HouseAds.CreateHouseAd(r.Context(), ad)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleDeactivateHouseAd(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.HouseAds.DeactivateHouseAd(r.Context(), id); err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) handleDeleteHouseAd(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.HouseAds.DeleteHouseAd(r.Context(), id); err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type selectRequest struct {
	Trigger string `json:"trigger"`
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var body selectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	trigger := domain.Trigger(body.Trigger)
	if !trigger.Valid() || trigger == domain.TriggerHomeBanner {
		h.writeError(w, http.StatusBadRequest, "unknown trigger")
		return
	}
	selection, err := h.svc.Selection.Select(r.Context(), trigger)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, selection)
}

func (h *Handler) handleBannerFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.svc.Selection.BannerFeed(r.Context())
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, feed)
}

type clientEventRequest struct {
	Event    string         `json:"event"`
	AdID     string         `json:"ad_id"`
	Kind     string         `json:"kind"`
	Metadata map[string]any `json:"metadata"`
}

// handleClientEvent records events reported by the embedded client, which
// names the ad kind explicitly since it also presents house ads.
func (h *Handler) handleClientEvent(w http.ResponseWriter, r *http.Request) {
	var body clientEventRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Event == "" || body.AdID == "" {
		h.writeError(w, http.StatusBadRequest, "Missing event or ad_id")
		return
	}
	eventType := domain.EventType(body.Event)
	if !eventType.Valid() {
		h.writeError(w, http.StatusBadRequest, "Invalid event type")
		return
	}
	kind := domain.AdKind(body.Kind)
	if kind == "" {
		kind = domain.KindCampaign
	}
	if kind != domain.KindCampaign && kind != domain.KindHouse {
		h.writeError(w, http.StatusBadRequest, "unknown ad kind")
		return
	}
	attr := domain.Attribution{
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
		Metadata:  body.Metadata,
	}
	if err := h.svc.Tracking.RecordEvent(r.Context(), body.AdID, kind, eventType, attr); err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, serveEventResponse{Success: true, Event: body.Event})
}
