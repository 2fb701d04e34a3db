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

	checkAvailabilityHandler "github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers/check_availability"
	createCombinationHandler "github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers/create_combination"
	findAssignmentHandler "github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers/find_assignment"
	getFloorPlanHandler "github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers/get_floor_plan"
	getReservationHandler "github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers/get_reservation"
	getStatusHistoryHandler "github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers/get_status_history"
	getTransitionsHandler "github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers/get_transitions"
	retireCombinationHandler "github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers/retire_combination"
	switchTablesHandler "github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers/switch_tables"
	updateStatusHandler "github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers/update_status"
	validateCapacityHandler "github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers/validate_capacity"
	"github.com/qwerty-development/rbs-restaurant-sub003/internal/api/middleware"
	"github.com/qwerty-development/rbs-restaurant-sub003/internal/config"
	historyRepo "github.com/qwerty-development/rbs-restaurant-sub003/internal/infra/storage/history"
	reservationRepo "github.com/qwerty-development/rbs-restaurant-sub003/internal/infra/storage/reservation"
	tableRepo "github.com/qwerty-development/rbs-restaurant-sub003/internal/infra/storage/table"
	floorplanService "github.com/qwerty-development/rbs-restaurant-sub003/internal/service/floorplan"
	reservationsService "github.com/qwerty-development/rbs-restaurant-sub003/internal/service/reservations"
	checkAvailabilityUC "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/check_availability"
	findAssignmentUC "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/find_assignment"
	switchTablesUC "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/switch_tables"
	updateStatusUC "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/update_status"
	validateCapacityUC "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/validate_capacity"
	"github.com/qwerty-development/rbs-restaurant-sub003/pkg/dbmetrics"
	"github.com/qwerty-development/rbs-restaurant-sub003/pkg/logger"
	"github.com/qwerty-development/rbs-restaurant-sub003/pkg/metrics"
	"github.com/qwerty-development/rbs-restaurant-sub003/pkg/simpletxmanager"
	"github.com/qwerty-development/rbs-restaurant-sub003/pkg/txmanager"
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

	log.Info("Starting table engine...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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
		tableRepository       *tableRepo.Repository
		reservationRepository *reservationRepo.Repository
		historyRepository     *historyRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		tableRepository = tableRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		historyRepository = historyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		tableRepository = tableRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		historyRepository = historyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		historyRepository,
		log,
	)
	floorPlanSvc := floorplanService.NewService(
		tableRepository,
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		reservationRepository,
		log,
	)
	findAssignmentUseCase := findAssignmentUC.NewUseCase(
		tableRepository,
		reservationRepository,
		historyRepository,
		txMgr,
		log,
	)
	updateStatusUseCase := updateStatusUC.NewUseCase(
		reservationRepository,
		historyRepository,
		txMgr,
		log,
	)
	switchTablesUseCase := switchTablesUC.NewUseCase(
		tableRepository,
		reservationRepository,
		historyRepository,
		txMgr,
		log,
	)
	validateCapacityUseCase := validateCapacityUC.NewUseCase(
		tableRepository,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	findAssignment := findAssignmentHandler.NewHandler(findAssignmentUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(updateStatusUseCase, log)
	switchTables := switchTablesHandler.NewHandler(switchTablesUseCase, log)
	validateCapacity := validateCapacityHandler.NewHandler(validateCapacityUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getStatusHistory := getStatusHistoryHandler.NewHandler(reservationSvc, log)
	getTransitions := getTransitionsHandler.NewHandler(reservationSvc, log)
	getFloorPlan := getFloorPlanHandler.NewHandler(floorPlanSvc, log)
	createCombination := createCombinationHandler.NewHandler(floorPlanSvc, log)
	retireCombination := retireCombinationHandler.NewHandler(floorPlanSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// План зала: столы и комбинации
	api.HandleFunc("/restaurants/{restaurantId}/tables",
		getFloorPlan.Handle).Methods(http.MethodGet)

	// Проверка доступности набора столов в окне времени
	api.HandleFunc("/restaurants/{restaurantId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Проверка вместимости набора столов
	api.HandleFunc("/restaurants/{restaurantId}/capacity-check",
		validateCapacity.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Посадка ---
	// Подбор столов, опционально с фиксацией за бронированием
	protected.HandleFunc("/restaurants/{restaurantId}/assignments",
		findAssignment.Handle).Methods(http.MethodPost)

	// Карточка бронирования
	protected.HandleFunc("/reservations/{reservationId}",
		getReservation.Handle).Methods(http.MethodGet)

	// Журнал изменений бронирования
	protected.HandleFunc("/reservations/{reservationId}/history",
		getStatusHistory.Handle).Methods(http.MethodGet)

	// Допустимые переходы и прогресс посадки
	protected.HandleFunc("/reservations/{reservationId}/transitions",
		getTransitions.Handle).Methods(http.MethodGet)

	// Смена статуса посадки
	protected.HandleFunc("/reservations/{reservationId}/status",
		updateStatus.Handle).Methods(http.MethodPatch)

	// Пересадка за другие столы
	protected.HandleFunc("/reservations/{reservationId}/tables",
		switchTables.Handle).Methods(http.MethodPatch)

	// --- Управление планом зала ---
	// Создание комбинации столов
	protected.HandleFunc("/restaurants/{restaurantId}/combinations",
		createCombination.Handle).Methods(http.MethodPost)

	// Вывод комбинации из эксплуатации
	protected.HandleFunc("/restaurants/{restaurantId}/combinations/{combinationId}",
		retireCombination.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик connection pool
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
