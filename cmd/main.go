package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/parisstyle/PS-SalonService/internal/api/handlers/create_appointment"
	getAvailabilityHandler "github.com/parisstyle/PS-SalonService/internal/api/handlers/get_availability"
	getProfileHandler "github.com/parisstyle/PS-SalonService/internal/api/handlers/get_profile"
	listAppointmentsHandler "github.com/parisstyle/PS-SalonService/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/parisstyle/PS-SalonService/internal/api/handlers/list_services"
	listStylistsHandler "github.com/parisstyle/PS-SalonService/internal/api/handlers/list_stylists"
	loginHandler "github.com/parisstyle/PS-SalonService/internal/api/handlers/login"
	registerHandler "github.com/parisstyle/PS-SalonService/internal/api/handlers/register"
	updateStatusHandler "github.com/parisstyle/PS-SalonService/internal/api/handlers/update_appointment_status"
	"github.com/parisstyle/PS-SalonService/internal/api/middleware"
	"github.com/parisstyle/PS-SalonService/internal/config"
	appointmentRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/appointment"
	catalogRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/catalog"
	stylistRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/stylist"
	userRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/user"
	appointmentsService "github.com/parisstyle/PS-SalonService/internal/service/appointments"
	catalogService "github.com/parisstyle/PS-SalonService/internal/service/catalog"
	schedulingService "github.com/parisstyle/PS-SalonService/internal/service/scheduling"
	usersService "github.com/parisstyle/PS-SalonService/internal/service/users"
	createAppointmentUC "github.com/parisstyle/PS-SalonService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/parisstyle/PS-SalonService/internal/usecase/get_availability"
	"github.com/parisstyle/PS-SalonService/pkg/dbmetrics"
	"github.com/parisstyle/PS-SalonService/pkg/logger"
	"github.com/parisstyle/PS-SalonService/pkg/metrics"
	"github.com/parisstyle/PS-SalonService/pkg/simpletxmanager"
	"github.com/parisstyle/PS-SalonService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PS-SalonService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and transaction manager, with or without metrics
	var (
		appointmentRepository *appointmentRepo.Repository
		stylistRepository     *stylistRepo.Repository
		catalogRepository     *catalogRepo.Repository
		userRepository        *userRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		stylistRepository = stylistRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		stylistRepository = stylistRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	schedulerSvc := schedulingService.NewService(appointmentRepository, stylistRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, stylistRepository, log)
	usersSvc := usersService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		stylistRepository,
		schedulerSvc,
		txMgr,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(appointmentRepository, stylistRepository, log)

	// Handlers
	register := registerHandler.NewHandler(usersSvc, log)
	login := loginHandler.NewHandler(usersSvc, log)
	getProfile := getProfileHandler.NewHandler(usersSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listStylists := listStylistsHandler.NewHandler(catalogSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	loginLimiter := middleware.NewRateLimiter(cfg.Auth.LoginRPS, cfg.Auth.LoginBurst)

	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.Use(loginLimiter.Middleware)
	authRoutes.HandleFunc("/register", register.Handle).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login", login.Handle).Methods(http.MethodPost)

	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stylists", listStylists.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stylists/{stylistId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Protected routes (Bearer token)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret, log))

	protected.HandleFunc("/auth/me", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
