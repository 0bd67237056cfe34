package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rajwantprajapati/devTinder/internal/config"
	"github.com/rajwantprajapati/devTinder/internal/database"
	"github.com/rajwantprajapati/devTinder/internal/handlers"
	"github.com/rajwantprajapati/devTinder/internal/repository"
	cron "github.com/rajwantprajapati/devTinder/internal/scheduler"
	"github.com/rajwantprajapati/devTinder/internal/services"
	"github.com/rajwantprajapati/devTinder/pkg/email"
	"github.com/rajwantprajapati/devTinder/pkg/logger"
	"github.com/rs/cors"
)

func main() {
	cfg := config.LoadConfig()

	logger.InitLogger()

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Index creation error: %v", err)
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	connRepo := repository.NewConnectionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// --- Services ---
	var mailer services.MailSender
	if cfg.SMTPHost != "" {
		mailer = email.SendEmail
	}
	userService := services.NewUserService(userRepo, mailer)
	notificationService := services.NewNotificationService(notificationRepo)
	connectionService := services.NewConnectionService(connRepo, userRepo, notificationService)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(userService, cfg)
	profileHandler := handlers.NewProfileHandler(userService)
	requestHandler := handlers.NewRequestHandler(connectionService)
	userHandler := handlers.NewUserHandler(connectionService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	router := handlers.NewRouter(
		authHandler,
		profileHandler,
		requestHandler,
		userHandler,
		notificationHandler,
		cfg.JWTSecret,
		userService,
	)

	cron.StartNotificationCronJobs(notificationService)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
