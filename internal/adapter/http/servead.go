package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port"
)

// Permissive CORS: external apps pull ads from arbitrary origins.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "authorization, x-client-info, apikey, content-type, x-api-key",
}

type servedAdResponse struct {
	Ad      *port.ServedAd `json:"ad"`
	Message string         `json:"message,omitempty"`
}

type serveEventRequest struct {
	Event    string         `json:"event"`
	AdID     string         `json:"ad_id"`
	Metadata map[string]any `json:"metadata"`
}

type serveEventResponse struct {
	Success bool   `json:"success"`
	Event   string `json:"event"`
}

// handleServeAd is the external serving endpoint: GET fetches an ad, POST
// reports an event, OPTIONS answers the CORS preflight, anything else is
// a JSON 405. The x-api-key header is optional but tracked; a supplied
// key that is unknown or inactive is rejected with 401.
func (h *Handler) handleServeAd(w http.ResponseWriter, r *http.Request) {
	for k, v := range corsHeaders {
		w.Header().Set(k, v)
	}
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
		return
	}

	var apiKeyID *string
	token := r.Header.Get("x-api-key")
	if token == "" && h.requireAPIKey {
		h.writeError(w, http.StatusUnauthorized, "Invalid API key")
		return
	}
	if token != "" {
		key, err := h.svc.Serve.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, port.ErrInvalidAPIKey) {
				h.writeError(w, http.StatusUnauthorized, "Invalid API key")
			} else {
				h.logger.Error("api key lookup error", slog.Any("error", err))
				h.writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		apiKeyID = &key.ID
	}

	switch r.Method {
	case http.MethodGet:
		h.serveAdFetch(w, r)
	case http.MethodPost:
		h.serveAdEvent(w, r, apiKeyID)
	default:
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *Handler) serveAdFetch(w http.ResponseWriter, r *http.Request) {
	adType := domain.AdType(r.URL.Query().Get("type"))
	if adType == "" {
		adType = domain.AdTypeBanner
	}
	h.logger.Debug("serving ad", slog.String("type", string(adType)))

	ad, err := h.svc.Serve.PickAd(r.Context(), adType)
	if err != nil {
		h.logger.Error("pick ad error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if ad == nil {
		h.writeJSON(w, http.StatusOK, servedAdResponse{Ad: nil, Message: "No ads available"})
		return
	}
	h.writeJSON(w, http.StatusOK, servedAdResponse{Ad: ad})
}

func (h *Handler) serveAdEvent(w http.ResponseWriter, r *http.Request, apiKeyID *string) {
	var body serveEventRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "Missing event or ad_id")
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
	h.logger.Debug("tracking event",
		slog.String("event", body.Event), slog.String("ad_id", body.AdID))

	attr := domain.Attribution{
		APIKeyID:  apiKeyID,
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
		Metadata:  body.Metadata,
	}
	err := h.svc.Serve.RecordExternalEvent(r.Context(), eventType, body.AdID, attr)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Ad not found")
			return
		}
		h.logger.Error("record event error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, serveEventResponse{Success: true, Event: body.Event})
}

// clientIP prefers the first x-forwarded-for hop, falling back to the
// transport address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("x-forwarded-for"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	return r.RemoteAddr
}
