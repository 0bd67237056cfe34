package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rajwantprajapati/devTinder/internal/models"
	"github.com/rajwantprajapati/devTinder/internal/services"
	jwtutil "github.com/rajwantprajapati/devTinder/pkg/jwt"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type contextKey string

const userContextKey contextKey = "authUser"

// AuthMiddleware reads the bearer token from the "token" cookie, verifies
// it and resolves the embedded user ID to a full user record, which is
// attached to the request context. Any failure terminates the request.
func AuthMiddleware(secret string, users *services.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("token")
			if err != nil {
				rejectUnauthenticated(w, fmt.Errorf("token not found"))
				return
			}

			claims, err := jwtutil.ParseToken(cookie.Value, secret)
			if err != nil {
				rejectUnauthenticated(w, err)
				return
			}

			userID, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				rejectUnauthenticated(w, fmt.Errorf("invalid user id in token"))
				return
			}

			user, err := users.GetUser(r.Context(), userID)
			if err != nil {
				rejectUnauthenticated(w, fmt.Errorf("user not found"))
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext returns the authenticated user attached by
// AuthMiddleware, or nil.
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

func rejectUnauthenticated(w http.ResponseWriter, err error) {
	logrus.WithError(err).Warn("User auth failed")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"message": fmt.Sprintf("USER AUTH FAILED: %v", err),
		},
	})
}
