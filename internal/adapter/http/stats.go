package httpadapter

import (
	"net/http"
	"strconv"
)

func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var ownerID *string
	if v := r.URL.Query().Get("owner_id"); v != "" {
		ownerID = &v
	}
	summary, err := h.svc.Tracking.Summary(r.Context(), ownerID)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleStatsEvents(w http.ResponseWriter, r *http.Request) {
	var adID *string
	if v := r.URL.Query().Get("ad_id"); v != "" {
		adID = &v
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			h.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	events, err := h.svc.Tracking.RecentEvents(r.Context(), adID, limit)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, events)
}
