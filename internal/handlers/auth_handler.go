package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rajwantprajapati/devTinder/internal/config"
	"github.com/rajwantprajapati/devTinder/internal/services"
	jwtutil "github.com/rajwantprajapati/devTinder/pkg/jwt"
	log "github.com/sirupsen/logrus"
)

// AuthHandler handles signup, signin and signout.
type AuthHandler struct {
	Service *services.UserService
	Config  *config.Config
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(service *services.UserService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Service: service,
		Config:  cfg,
	}
}

// SignupHandler handles POST /signup.
func (h *AuthHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req services.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode signup request")
		respondError(w, http.StatusBadRequest, "SIGNUP FAILED: invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.Service.RegisterUser(r.Context(), &req)
	if err != nil {
		log.WithError(err).Warn("Signup failed")
		respondError(w, http.StatusBadRequest, fmt.Sprintf("SIGNUP FAILED: %v", err))
		return
	}

	respondJSON(w, http.StatusCreated, "User signed up successfully", user.Safe())
}

// SigninHandler handles POST /signin. On success the bearer token is set
// as a cookie.
func (h *AuthHandler) SigninHandler(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		EmailID  string `json:"emailId"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.WithError(err).Warn("Failed to decode signin request")
		respondError(w, http.StatusBadRequest, "SIGNIN FAILED: invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.Service.AuthenticateUser(r.Context(), credentials.EmailID, credentials.Password)
	if err != nil {
		log.WithField("email", credentials.EmailID).WithError(err).Warn("Authentication failed")
		respondError(w, http.StatusBadRequest, fmt.Sprintf("SIGNIN FAILED: %v", err))
		return
	}

	token, err := jwtutil.GenerateToken(user.ID.Hex(), h.Config.JWTSecret, h.Config.TokenExpiry)
	if err != nil {
		log.WithError(err).Error("Failed to generate token")
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.Config.TokenExpiry),
		HttpOnly: true,
	})

	respondJSON(w, http.StatusOK, "Signed in successfully.", nil)
}

// SignoutHandler handles POST /signout by expiring the token cookie.
func (h *AuthHandler) SignoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	respondJSON(w, http.StatusOK, "Signed out successfully.", nil)
}
