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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// ListHandler handles GET /notifications.
func (h *NotificationHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusBadRequest, "FETCH NOTIFICATIONS FAILED: unauthenticated")
		return
	}

	notifications, err := h.Service.GetUserNotifications(r.Context(), user.ID)
	if err != nil {
		log.WithField("userID", user.ID.Hex()).WithError(err).Error("Failed to fetch notifications")
		respondError(w, http.StatusBadRequest, fmt.Sprintf("FETCH NOTIFICATIONS FAILED: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, "Notifications fetched successfully.", notifications)
}

// MarkAsReadHandler handles POST /notifications/{id}/read.
func (h *NotificationHandler) MarkAsReadHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusBadRequest, "MARK NOTIFICATION FAILED: unauthenticated")
		return
	}

	notifID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "MARK NOTIFICATION FAILED: invalid notification ID")
		return
	}

	if err := h.Service.MarkAsRead(r.Context(), user.ID, notifID); err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, models.ErrNotFound) {
			code = http.StatusNotFound
		}
		respondError(w, code, fmt.Sprintf("MARK NOTIFICATION FAILED: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, "Notification marked as read.", nil)
}

// DeleteHandler handles DELETE /notifications/{id}.
func (h *NotificationHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusBadRequest, "DELETE NOTIFICATION FAILED: unauthenticated")
		return
	}

	notifID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "DELETE NOTIFICATION FAILED: invalid notification ID")
		return
	}

	if err := h.Service.Delete(r.Context(), user.ID, notifID); err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, models.ErrNotFound) {
			code = http.StatusNotFound
		}
		respondError(w, code, fmt.Sprintf("DELETE NOTIFICATION FAILED: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, "Notification deleted.", nil)
}
