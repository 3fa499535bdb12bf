package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"auditorium/internal/api"
	"auditorium/internal/auth"
	"auditorium/internal/config"
	"auditorium/internal/repository"
	"auditorium/internal/service"
	"auditorium/internal/utils"
)

func main() {
	utils.InitializeLogger()
	log := utils.GetLogger().Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	repo, cleanup, err := buildRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s booking store: %v", cfg.BookingStore, err)
	}
	defer cleanup()
	log.Infof("Using %s booking store", cfg.BookingStore)

	notifier := service.NewNotifyService(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	loc := service.SchoolLocation(cfg.BookingTZ)

	bookingSvc := service.NewBookingService(repo, notifier, loc)
	sessionSvc := service.NewSessionService(repo)
	adminAuthSvc := service.NewAdminAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret)
	jobSvc := service.NewJobService(repo, cfg.SnapshotDir)

	bookingHandler := api.NewBookingHandler(bookingSvc)
	sessionHandler := api.NewSessionHandler(sessionSvc)
	adminHandler := api.NewAdminHandler(bookingSvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/submit", bookingHandler.SubmitBooking).Methods("POST")
	r.HandleFunc("/sessions", sessionHandler.ListSessions).Methods("GET")
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(cfg.JWTSecret))
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/remove/{index}", adminHandler.RemoveBooking).Methods("POST")

	c := cron.New()
	if _, err := c.AddFunc(cfg.SnapshotSchedule, func() {
		if err := jobSvc.SnapshotBookings(context.Background()); err != nil {
			log.Errorf("Snapshot job failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule snapshot job: %v", err)
	}
	c.Start()
	defer c.Stop()

	handler := handlers.RecoveryHandler()(handlers.LoggingHandler(os.Stdout, r))

	log.Infof("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}

func buildRepository(cfg *config.Config) (repository.BookingRepository, func(), error) {
	noop := func() {}
	switch cfg.BookingStore {
	case "postgres":
		database, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := database.Ping(); err != nil {
			return nil, noop, err
		}
		return repository.NewPostgresBookingRepository(database), func() { database.Close() }, nil
	case "mongo":
		client, err := repository.ConnectMongo(context.Background(), cfg.MongoURI)
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() { _ = client.Disconnect(context.Background()) }
		return repository.NewMongoBookingRepository(client, cfg.MongoDB), cleanup, nil
	default:
		repo, err := repository.NewFileBookingRepository(cfg.DataFile)
		return repo, noop, err
	}
}
