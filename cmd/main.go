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

	createBookingHandler "github.com/m04kA/WebMTour-Service/internal/api/handlers/create_booking"
	createTourHandler "github.com/m04kA/WebMTour-Service/internal/api/handlers/create_tour"
	deleteTourHandler "github.com/m04kA/WebMTour-Service/internal/api/handlers/delete_tour"
	getBookingHandler "github.com/m04kA/WebMTour-Service/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/m04kA/WebMTour-Service/internal/api/handlers/get_dashboard"
	getTourHandler "github.com/m04kA/WebMTour-Service/internal/api/handlers/get_tour"
	listBookingsHandler "github.com/m04kA/WebMTour-Service/internal/api/handlers/list_bookings"
	listToursHandler "github.com/m04kA/WebMTour-Service/internal/api/handlers/list_tours"
	setTourActiveHandler "github.com/m04kA/WebMTour-Service/internal/api/handlers/set_tour_active"
	updateBookingStatusHandler "github.com/m04kA/WebMTour-Service/internal/api/handlers/update_booking_status"
	updateTourHandler "github.com/m04kA/WebMTour-Service/internal/api/handlers/update_tour"
	"github.com/m04kA/WebMTour-Service/internal/api/middleware"
	"github.com/m04kA/WebMTour-Service/internal/config"
	adminRepo "github.com/m04kA/WebMTour-Service/internal/infra/storage/admin"
	bookingRepo "github.com/m04kA/WebMTour-Service/internal/infra/storage/booking"
	tourRepo "github.com/m04kA/WebMTour-Service/internal/infra/storage/tour"
	tourDateRepo "github.com/m04kA/WebMTour-Service/internal/infra/storage/tourdate"
	"github.com/m04kA/WebMTour-Service/internal/integrations/identity"
	bookingsService "github.com/m04kA/WebMTour-Service/internal/service/bookings"
	toursService "github.com/m04kA/WebMTour-Service/internal/service/tours"
	createBookingUC "github.com/m04kA/WebMTour-Service/internal/usecase/create_booking"
	createTourUC "github.com/m04kA/WebMTour-Service/internal/usecase/create_tour"
	updateTourUC "github.com/m04kA/WebMTour-Service/internal/usecase/update_tour"
	"github.com/m04kA/WebMTour-Service/pkg/dbmetrics"
	"github.com/m04kA/WebMTour-Service/pkg/logger"
	"github.com/m04kA/WebMTour-Service/pkg/metrics"
	"github.com/m04kA/WebMTour-Service/pkg/simpletxmanager"
	"github.com/m04kA/WebMTour-Service/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting WebMTour-Service...")
	log.Info("Configuration loaded from %s (price_mode=%s, strict_admission=%t, atomic_date_replace=%t)",
		configPath, cfg.Booking.PriceMode, cfg.Booking.StrictAdmission, cfg.Tours.AtomicDateReplace)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		tourRepository     *tourRepo.Repository
		tourDateRepository *tourDateRepo.Repository
		bookingRepository  *bookingRepo.Repository
		adminRepository    *adminRepo.Repository
		txMgr              *txmanager.Manager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		tourRepository = tourRepo.NewRepository(wrappedDB)
		tourDateRepository = tourDateRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		adminRepository = adminRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		tourRepository = tourRepo.NewRepository(db)
		tourDateRepository = tourDateRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		adminRepository = adminRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Проверка токенов identity-сервиса
	verifier := identity.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Audience)

	// Инициализируем сервисы
	tourSvc := toursService.NewService(tourRepository, tourDateRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, tourRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		tourRepository,
		tourDateRepository,
		bookingRepository,
		txMgr,
		metricsCollector,
		log,
		createBookingUC.Options{
			StrictAdmission: cfg.Booking.StrictAdmission,
			PriceMode:       cfg.Booking.PriceMode,
		},
	)
	createTourUseCase := createTourUC.NewUseCase(tourRepository, tourDateRepository, log)
	updateTourUseCase := updateTourUC.NewUseCase(
		tourRepository,
		tourDateRepository,
		txMgr,
		log,
		updateTourUC.Options{AtomicDateReplace: cfg.Tours.AtomicDateReplace},
	)

	// Инициализируем handlers
	listTours := listToursHandler.NewHandler(tourSvc, log)
	getTour := getTourHandler.NewHandler(tourSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	createTour := createTourHandler.NewHandler(createTourUseCase, log)
	updateTour := updateTourHandler.NewHandler(updateTourUseCase, log)
	setTourActive := setTourActiveHandler.NewHandler(tourSvc, log)
	deleteTour := deleteTourHandler.NewHandler(tourSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getDashboard := getDashboardHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (витрина и оформление бронирования)
	// ============================================================

	api.HandleFunc("/tours", listTours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tours/{tourId}", getTour.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (Bearer token активного администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(verifier, adminRepository, log))

	// --- Туры ---
	admin.HandleFunc("/tours", listTours.HandleAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/tours", createTour.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/tours/{tourId}", getTour.HandleAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/tours/{tourId}", updateTour.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/tours/{tourId}", setTourActive.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/tours/{tourId}", deleteTour.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
