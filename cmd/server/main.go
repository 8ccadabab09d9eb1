package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "concrental-backend/internal/api/http"
	"concrental-backend/internal/config"
	"concrental-backend/internal/geo"
	"concrental-backend/internal/jobs"
	"concrental-backend/internal/logger"
	"concrental-backend/internal/pdf"
	"concrental-backend/internal/repository/postgres"
	"concrental-backend/internal/scheduler"
	"concrental-backend/internal/security"
	"concrental-backend/internal/service"
	"concrental-backend/internal/storage"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ConcRental backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret, cfg.AccessTokenTTL())

	// Storage backend
	var blobs storage.BlobStorage
	var localStorage *storage.LocalStorage
	switch cfg.Storage.Type {
	case "local":
		logger.Info("Using local storage", "dir", cfg.Storage.LocalDir)
		localStorage, err = storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.LocalDir)
		if err != nil {
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		blobs = localStorage
	case "firebase":
		logger.Info("Using firebase storage", "bucket", cfg.Storage.Bucket)
		blobs, err = storage.NewFirebaseStorage(context.Background(), cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			log.Fatalf("Failed to initialize firebase storage: %v", err)
		}
	}

	// External geo collaborators
	geocoder := geo.NewNominatimClient(cfg.Geocoding.BaseURL, cfg.Geocoding.UserAgent, cfg.GeocodingTimeout())
	var router service.Router
	if cfg.Routing.Enabled {
		router = geo.NewOSRMClient(cfg.Routing.BaseURL, cfg.RoutingTimeout())
	}

	// Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository, geocoder, cfg.Geocoding.Locality)
	rentalSvc := service.NewRentalService(store.RentalRepository)
	freightSvc := service.NewFreightService(store.SettingsRepository, geocoder, router, cfg.Geocoding.Locality)
	financeSvc := service.NewFinanceService(store.RentalRepository)
	settingsSvc := service.NewSettingsService(store.SettingsRepository, geocoder, cfg.Geocoding.Locality)

	contracts := pdf.NewGenerator(cfg.Contract.CompanyName)

	handlers := httpapi.NewHandlers(
		authSvc,
		equipmentSvc,
		customerSvc,
		rentalSvc,
		freightSvc,
		financeSvc,
		settingsSvc,
		blobs,
		contracts,
	)

	// Overdue reminder scheduler
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled && cfg.Email.Enabled {
		emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		runner := jobs.NewRunner(store.UserRepository, store.RentalRepository, emailSvc)
		sched = scheduler.New(runner, cfg.Scheduler.SendOverdueReminders)
		sched.Start()
	}

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      httpapi.NewRouter(handlers, tokenManager, localStorage),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	if sched != nil {
		sched.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
