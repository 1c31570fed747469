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

	cancelBookingHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/create_booking"
	createPackageHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/create_package"
	createSlotHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/create_slot"
	createStudioHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/create_studio"
	deletePackageHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/delete_package"
	deleteSlotHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/delete_slot"
	deleteStudioHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/delete_studio"
	generateSlotsHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/generate_slots"
	getAllBookingsHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/get_all_bookings"
	getAvailableSlotsHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/get_booking"
	getHeldSlotsHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/get_held_slots"
	getPackageHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/get_package"
	getStudioHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/get_studio"
	getUserBookingsHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/get_user_bookings"
	healthHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/health"
	listPackagesHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/list_packages"
	listStudiosHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/list_studios"
	updateBookingStatusHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/StudioBookingService/internal/api/middleware"
	"github.com/m04kA/StudioBookingService/internal/config"
	"github.com/m04kA/StudioBookingService/internal/domain"
	"github.com/m04kA/StudioBookingService/internal/infra/storage"
	"github.com/m04kA/StudioBookingService/internal/infra/storage/migrations"
	"github.com/m04kA/StudioBookingService/internal/scheduler"
	bookingsService "github.com/m04kA/StudioBookingService/internal/service/bookings"
	slotsService "github.com/m04kA/StudioBookingService/internal/service/slots"
	studiosService "github.com/m04kA/StudioBookingService/internal/service/studios"
	createBookingUC "github.com/m04kA/StudioBookingService/internal/usecase/create_booking"
	ensureSlotsUC "github.com/m04kA/StudioBookingService/internal/usecase/ensure_slots"
	getAvailableSlotsUC "github.com/m04kA/StudioBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/StudioBookingService/pkg/dbmetrics"
	"github.com/m04kA/StudioBookingService/pkg/logger"
	"github.com/m04kA/StudioBookingService/pkg/metrics"
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

	log.Info("Starting StudioBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var (
		store  *storage.Storage
		pinger healthHandler.Pinger
	)

	switch cfg.Database.Driver {
	case config.DriverMemory:
		store = storage.NewMemory()
		log.Warn("Using in-memory storage, data will be lost on restart")

	default:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Database.RunMigrations {
			if err := migrations.Run(db, log); err != nil {
				log.Fatal("Failed to apply migrations: %v", err)
			}
		}

		// Без метрик обёртка работает как обычный *sql.DB
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		if cfg.Metrics.Enabled {
			log.Info("Database metrics collection started")
		}

		store = storage.NewPostgres(wrappedDB)
		pinger = wrappedDB
	}

	// Инициализируем use cases
	ensureSlotsUseCase := ensureSlotsUC.NewUseCase(
		store.Studios,
		store.Slots,
		store.TxManager,
		metricsCollector,
		ensureSlotsUC.Config{
			DefaultOpeningHour: cfg.Slots.DefaultOpeningHour,
			DefaultClosingHour: cfg.Slots.DefaultClosingHour,
		},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		store.Studios,
		store.Slots,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		store.Bookings,
		store.Slots,
		store.Packages,
		store.TxManager,
		metricsCollector,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		store.Bookings,
		store.Slots,
		store.TxManager,
		metricsCollector,
		cfg.Booking.StrictStatusTransitions,
		log,
	)
	studioSvc := studiosService.NewService(
		store.Studios,
		store.Packages,
		ensureSlotsUseCase,
		cfg.Slots.HorizonDays,
		log,
	)
	slotSvc := slotsService.NewService(
		store.Studios,
		store.Slots,
		ensureSlotsUseCase,
		store.TxManager,
		slotsService.Config{
			DefaultDays: domain.DefaultGenerateDays,
			MaxDays:     cfg.Slots.MaxGenerateDays,
		},
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler(pinger, log)

	listStudios := listStudiosHandler.NewHandler(studioSvc, log)
	getStudio := getStudioHandler.NewHandler(studioSvc, log)
	createStudio := createStudioHandler.NewHandler(studioSvc, log)
	deleteStudio := deleteStudioHandler.NewHandler(studioSvc, log)
	listPackages := listPackagesHandler.NewHandler(studioSvc, log)
	getPackage := getPackageHandler.NewHandler(studioSvc, log)
	createPackage := createPackageHandler.NewHandler(studioSvc, log)
	deletePackage := deletePackageHandler.NewHandler(studioSvc, log)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(ensureSlotsUseCase, getAvailableSlotsUseCase, cfg.Slots.MaxGenerateDays, log)
	getHeldSlots := getHeldSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	generateSlots := generateSlotsHandler.NewHandler(slotSvc, log)
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/studios", listStudios.Handle).Methods(http.MethodGet)
	api.HandleFunc("/studios/{studioId}", getStudio.Handle).Methods(http.MethodGet)
	api.HandleFunc("/studios/{studioId}/packages", listPackages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/packages/{packageId}", getPackage.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату, сетка создается при первом обращении
	api.HandleFunc("/studios/{studioId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireAdmin)

	// --- Каталог ---
	admin.HandleFunc("/studios", createStudio.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/studios/{studioId}", deleteStudio.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/studios/{studioId}/packages", createPackage.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/packages/{packageId}", deletePackage.Handle).Methods(http.MethodDelete)

	// --- Слоты ---
	admin.HandleFunc("/studios/{studioId}/held-slots", getHeldSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/studios/{studioId}/slots/generate", generateSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/admin/bookings", getAllBookings.Handle).Methods(http.MethodGet)

	// Фоновое продление горизонта слотов
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()

	if cfg.Slots.SchedulerEnabled {
		slotScheduler := scheduler.New(
			store.Studios,
			ensureSlotsUseCase,
			cfg.Slots.RefreshIntervalDuration(),
			cfg.Slots.HorizonDays,
			log,
		)
		go slotScheduler.Start(schedulerCtx)
		log.Info("Slot scheduler started (interval=%s, horizon=%d days)",
			cfg.Slots.RefreshIntervalDuration(), cfg.Slots.HorizonDays)
	}

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopScheduler()

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
