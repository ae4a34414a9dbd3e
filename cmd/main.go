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

	cancelBookingHandler "github.com/m04kA/SMC-StayPlanner/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-StayPlanner/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-StayPlanner/internal/api/handlers/get_booking"
	getPlanningHandler "github.com/m04kA/SMC-StayPlanner/internal/api/handlers/get_planning"
	getRoomCalendarHandler "github.com/m04kA/SMC-StayPlanner/internal/api/handlers/get_room_calendar"
	listRoomsHandler "github.com/m04kA/SMC-StayPlanner/internal/api/handlers/list_rooms"
	searchAvailabilityHandler "github.com/m04kA/SMC-StayPlanner/internal/api/handlers/search_availability"
	updateBookingHandler "github.com/m04kA/SMC-StayPlanner/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-StayPlanner/internal/api/middleware"
	"github.com/m04kA/SMC-StayPlanner/internal/config"
	bookingRepo "github.com/m04kA/SMC-StayPlanner/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-StayPlanner/internal/infra/storage/room"
	bookingsService "github.com/m04kA/SMC-StayPlanner/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-StayPlanner/internal/usecase/create_booking"
	getPlanningUC "github.com/m04kA/SMC-StayPlanner/internal/usecase/get_planning"
	getRoomCalendarUC "github.com/m04kA/SMC-StayPlanner/internal/usecase/get_room_calendar"
	searchAvailabilityUC "github.com/m04kA/SMC-StayPlanner/internal/usecase/search_availability"
	updateBookingUC "github.com/m04kA/SMC-StayPlanner/internal/usecase/update_booking"
	"github.com/m04kA/SMC-StayPlanner/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayPlanner/pkg/logger"
	"github.com/m04kA/SMC-StayPlanner/pkg/metrics"
	"github.com/m04kA/SMC-StayPlanner/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-StayPlanner...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). nil-коллектор ничего не пишет.
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
	db.SetConnMaxIdleTime(time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории и transaction manager
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		roomRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		txMgr,
		metricsCollector,
		log,
	)

	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		txMgr,
		metricsCollector,
		log,
	)

	getPlanningUseCase := getPlanningUC.NewUseCase(
		roomRepository,
		bookingRepository,
		metricsCollector,
		cfg.Planning.DefaultDays,
		cfg.Planning.MaxDays,
		log,
	)

	getRoomCalendarUseCase := getRoomCalendarUC.NewUseCase(
		roomRepository,
		bookingRepository,
		cfg.Planning.DefaultDays,
		cfg.Planning.MaxDays,
		log,
	)

	searchAvailabilityUseCase := searchAvailabilityUC.NewUseCase(
		roomRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(bookingSvc, log)
	searchAvailability := searchAvailabilityHandler.NewHandler(searchAvailabilityUseCase, log)
	getRoomCalendar := getRoomCalendarHandler.NewHandler(getRoomCalendarUseCase, log)
	getPlanning := getPlanningHandler.NewHandler(getPlanningUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список номеров
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)

	// Поиск свободных номеров на даты
	api.HandleFunc("/availability", searchAvailability.Handle).Methods(http.MethodGet)

	// Календарь занятости номера (без данных гостей)
	api.HandleFunc("/rooms/{roomId}/calendar", getRoomCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Сетка планирования по всем номерам
	protected.HandleFunc("/planning", getPlanning.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
