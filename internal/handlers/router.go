package handlers

import (
	"github.com/rajwantprajapati/devTinder/internal/services"
	"github.com/rajwantprajapati/devTinder/pkg/middleware"
	"github.com/gorilla/mux"
)

// NewRouter wires all route handlers onto a mux router. Everything except
// signup/signin/signout sits behind the auth middleware.
func NewRouter(
	auth *AuthHandler,
	profile *ProfileHandler,
	request *RequestHandler,
	user *UserHandler,
	notification *NotificationHandler,
	jwtSecret string,
	users *services.UserService,
) *mux.Router {
	router := mux.NewRouter()
	authGate := middleware.AuthMiddleware(jwtSecret, users)

	router.HandleFunc("/signup", auth.SignupHandler).Methods("POST")
	router.HandleFunc("/signin", auth.SigninHandler).Methods("POST")
	router.HandleFunc("/signout", auth.SignoutHandler).Methods("POST")

	profileRoutes := router.PathPrefix("/profile").Subrouter()
	profileRoutes.Use(authGate)
	profileRoutes.HandleFunc("", profile.ViewProfileHandler).Methods("GET")
	profileRoutes.HandleFunc("/edit", profile.EditProfileHandler).Methods("PATCH")
	profileRoutes.HandleFunc("/update-password", profile.UpdatePasswordHandler).Methods("PATCH")

	requestRoutes := router.PathPrefix("/request").Subrouter()
	requestRoutes.Use(authGate)
	requestRoutes.HandleFunc("/send/{status}/{toUserId}", request.SendRequestHandler).Methods("POST")
	requestRoutes.HandleFunc("/review/{status}/{requestId}", request.ReviewRequestHandler).Methods("POST")

	userRoutes := router.PathPrefix("/user").Subrouter()
	userRoutes.Use(authGate)
	userRoutes.HandleFunc("/requests/received", user.ReceivedRequestsHandler).Methods("GET")
	userRoutes.HandleFunc("/connections", user.ConnectionsHandler).Methods("GET")
	userRoutes.HandleFunc("/feed", user.FeedHandler).Methods("GET")

	notificationRoutes := router.PathPrefix("/notifications").Subrouter()
	notificationRoutes.Use(authGate)
	notificationRoutes.HandleFunc("", notification.ListHandler).Methods("GET")
	notificationRoutes.HandleFunc("/{id}/read", notification.MarkAsReadHandler).Methods("POST")
	notificationRoutes.HandleFunc("/{id}", notification.DeleteHandler).Methods("DELETE")

	router.Use(middleware.LoggingMiddleware)

	return router
}
