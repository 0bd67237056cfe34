package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rajwantprajapati/devTinder/internal/services"
	"github.com/rajwantprajapati/devTinder/pkg/middleware"
	log "github.com/sirupsen/logrus"
)

// ProfileHandler serves the logged-in user's own profile.
type ProfileHandler struct {
	Service *services.UserService
}

func NewProfileHandler(service *services.UserService) *ProfileHandler {
	return &ProfileHandler{Service: service}
}

// ViewProfileHandler handles GET /profile.
func (h *ProfileHandler) ViewProfileHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusBadRequest, "FETCH PROFILE FAILED: unauthenticated")
		return
	}

	respondJSON(w, http.StatusOK, "Profile fetched successfully", user)
}

// EditProfileHandler handles PATCH /profile/edit. The payload is decoded
// into the allow-listed update struct; unknown fields fail the request.
func (h *ProfileHandler) EditProfileHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusBadRequest, "UPDATE PROFILE FAILED: unauthenticated")
		return
	}

	var upd services.ProfileUpdate
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&upd); err != nil {
		log.WithError(err).Warn("Failed to decode profile update")
		respondError(w, http.StatusBadRequest, "UPDATE PROFILE FAILED: bad request payload")
		return
	}
	defer r.Body.Close()

	updated, err := h.Service.UpdateProfile(r.Context(), user.ID, &upd)
	if err != nil {
		log.WithField("userID", user.ID.Hex()).WithError(err).Warn("Profile update failed")
		respondError(w, http.StatusBadRequest, fmt.Sprintf("UPDATE PROFILE FAILED: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, "Profile updated successfully.", updated)
}

// UpdatePasswordHandler handles PATCH /profile/update-password.
func (h *ProfileHandler) UpdatePasswordHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusBadRequest, "UPDATE PASSWORD FAILED: unauthenticated")
		return
	}

	var body struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.WithError(err).Warn("Failed to decode password update")
		respondError(w, http.StatusBadRequest, "UPDATE PASSWORD FAILED: invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.Service.UpdatePassword(r.Context(), user, body.OldPassword, body.NewPassword); err != nil {
		log.WithField("userID", user.ID.Hex()).WithError(err).Warn("Password update failed")
		respondError(w, http.StatusBadRequest, fmt.Sprintf("UPDATE PASSWORD FAILED: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, "Password updated successfully.", nil)
}
