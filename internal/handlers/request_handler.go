package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rajwantprajapati/devTinder/internal/models"
	"github.com/rajwantprajapati/devTinder/internal/services"
	"github.com/rajwantprajapati/devTinder/pkg/middleware"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// RequestHandler manages the connection request endpoints.
type RequestHandler struct {
	Service *services.ConnectionService
}

func NewRequestHandler(service *services.ConnectionService) *RequestHandler {
	return &RequestHandler{Service: service}
}

// SendRequestHandler handles POST /request/send/{status}/{toUserId}.
func (h *RequestHandler) SendRequestHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusBadRequest, "SEND REQUEST FAILED: unauthenticated")
		return
	}

	vars := mux.Vars(r)
	status := vars["status"]
	toUserID := vars["toUserId"]

	request, err := h.Service.SendRequest(r.Context(), user, toUserID, status)
	if err != nil {
		log.WithFields(log.Fields{
			"fromUserID": user.ID.Hex(),
			"toUserID":   toUserID,
		}).WithError(err).Warn("Failed to send connection request")
		respondError(w, http.StatusBadRequest, fmt.Sprintf("SEND REQUEST FAILED: %v", err))
		return
	}

	message := fmt.Sprintf("%s sent the connection request.", user.FirstName)
	if request.Status == models.StatusIgnored {
		message = fmt.Sprintf("%s ignored the user.", user.FirstName)
	}

	respondJSON(w, http.StatusOK, message, request)
}

// ReviewRequestHandler handles POST /request/review/{status}/{requestId}.
// A request that does not exist, is not addressed to the caller, or is no
// longer pending, is reported as not found.
func (h *RequestHandler) ReviewRequestHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusBadRequest, "REVIEW REQUEST FAILED: unauthenticated")
		return
	}

	vars := mux.Vars(r)
	status := vars["status"]
	requestID := vars["requestId"]

	request, err := h.Service.ReviewRequest(r.Context(), user, requestID, status)
	if err != nil {
		log.WithFields(log.Fields{
			"userID":    user.ID.Hex(),
			"requestID": requestID,
		}).WithError(err).Warn("Failed to review connection request")

		code := http.StatusBadRequest
		if errors.Is(err, models.ErrNotFound) {
			code = http.StatusNotFound
		}
		respondError(w, code, fmt.Sprintf("REVIEW REQUEST FAILED: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, fmt.Sprintf("Connection request %s.", request.Status), request)
}
