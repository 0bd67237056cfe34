package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/rajwantprajapati/devTinder/internal/services"
	"github.com/rajwantprajapati/devTinder/pkg/middleware"
	log "github.com/sirupsen/logrus"
)

// UserHandler serves the listing endpoints under /user.
type UserHandler struct {
	Service *services.ConnectionService
}

func NewUserHandler(service *services.ConnectionService) *UserHandler {
	return &UserHandler{Service: service}
}

// ReceivedRequestsHandler handles GET /user/requests/received.
func (h *UserHandler) ReceivedRequestsHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusBadRequest, "FETCH REQUESTS FAILED: unauthenticated")
		return
	}

	requests, err := h.Service.GetReceivedRequests(r.Context(), user)
	if err != nil {
		log.WithField("userID", user.ID.Hex()).WithError(err).Error("Failed to fetch received requests")
		respondError(w, http.StatusBadRequest, fmt.Sprintf("FETCH REQUESTS FAILED: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, "Connection requests fetched successfully.", requests)
}

// ConnectionsHandler handles GET /user/connections.
func (h *UserHandler) ConnectionsHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusBadRequest, "FETCH CONNECTIONS FAILED: unauthenticated")
		return
	}

	connections, err := h.Service.GetConnections(r.Context(), user)
	if err != nil {
		log.WithField("userID", user.ID.Hex()).WithError(err).Error("Failed to fetch connections")
		respondError(w, http.StatusBadRequest, fmt.Sprintf("FETCH CONNECTIONS FAILED: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, "Connections fetched successfully.", connections)
}

// FeedHandler handles GET /user/feed with optional page and limit query
// parameters. Out-of-range values fall back to the defaults; limit is
// capped by the service.
func (h *UserHandler) FeedHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusBadRequest, "FETCH FEED FAILED: unauthenticated")
		return
	}

	page := parseQueryInt(r, "page", 1)
	limit := parseQueryInt(r, "limit", 10)

	feed, err := h.Service.GetFeed(r.Context(), user, page, limit)
	if err != nil {
		log.WithField("userID", user.ID.Hex()).WithError(err).Error("Failed to compose feed")
		respondError(w, http.StatusBadRequest, fmt.Sprintf("FETCH FEED FAILED: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, "Feed fetched successfully.", feed)
}

func parseQueryInt(r *http.Request, key string, fallback int64) int64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return value
}
