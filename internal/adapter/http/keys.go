package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type createAPIKeyRequest struct {
	OwnerID string `json:"owner_id"`
	AppName string `json:"app_name"`
}

func (h *Handler) handleListAPIKeys(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		h.writeError(w, http.StatusBadRequest, "owner_id is required")
		return
	}
	keys, err := h.svc.Keys.ListAPIKeys(r.Context(), ownerID)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, keys)
}

func (h *Handler) handleCreateAPIKey(w http.ResponseWriter, r *http.Request) {
	var body createAPIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.OwnerID == "" || body.AppName == "" {
		h.writeError(w, http.StatusBadRequest, "owner_id and app_name are required")
		return
	}
	key, err := h.svc.Keys.CreateAPIKey(r.Context(), body.OwnerID, body.AppName)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, key)
}

func (h *Handler) handleDeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Keys.DeleteAPIKey(r.Context(), id); err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
