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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createReservationHandler "github.com/inigoestebangomez/cool-mex-server/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/inigoestebangomez/cool-mex-server/internal/api/handlers/delete_reservation"
	getAvailabilityHandler "github.com/inigoestebangomez/cool-mex-server/internal/api/handlers/get_availability"
	getTablePlanHandler "github.com/inigoestebangomez/cool-mex-server/internal/api/handlers/get_table_plan"
	healthHandler "github.com/inigoestebangomez/cool-mex-server/internal/api/handlers/health"
	listReservationsHandler "github.com/inigoestebangomez/cool-mex-server/internal/api/handlers/list_reservations"
	"github.com/inigoestebangomez/cool-mex-server/internal/api/middleware"
	"github.com/inigoestebangomez/cool-mex-server/internal/config"
	reservationRepo "github.com/inigoestebangomez/cool-mex-server/internal/infra/storage/reservation"
	"github.com/inigoestebangomez/cool-mex-server/internal/queue"
	reservationsService "github.com/inigoestebangomez/cool-mex-server/internal/service/reservations"
	createReservationUC "github.com/inigoestebangomez/cool-mex-server/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/inigoestebangomez/cool-mex-server/internal/usecase/get_availability"
	"github.com/inigoestebangomez/cool-mex-server/pkg/dbmetrics"
	"github.com/inigoestebangomez/cool-mex-server/pkg/logger"
	"github.com/inigoestebangomez/cool-mex-server/pkg/metrics"
	"github.com/inigoestebangomez/cool-mex-server/pkg/simpletxmanager"
	"github.com/inigoestebangomez/cool-mex-server/pkg/txmanager"
)

func main() {
	// Секреты из .env (если файл есть), затем конфигурация
	_ = godotenv.Load()

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

	log.Info("Starting cool-mex-server...")
	log.Info("Configuration loaded from config.toml")

	// Доменная конфигурация: столы, каталог слотов, окно блокировки
	tablePlan, err := cfg.TablePlan()
	if err != nil {
		log.Fatal("Invalid table plan: %v", err)
	}
	schedule, err := cfg.ServiceSchedule()
	if err != nil {
		log.Fatal("Invalid schedule: %v", err)
	}
	log.Info("Table plan loaded: %d categories, %d slots, blocking window -%d/+%d min",
		len(tablePlan.Buckets), len(schedule.Catalog),
		schedule.BlockBeforeMinutes, schedule.BlockAfterMinutes)

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

	// Издатель событий о подтвержденных бронях (если брокер включен)
	var notifier createReservationUC.Notifier
	if cfg.Broker.Enabled {
		notifier = queue.NewPublisher(cfg.Broker.URL, cfg.Broker.Queue, log)
		log.Info("Notification publisher enabled (queue=%s)", cfg.Broker.Queue)
	} else {
		log.Info("Notification publisher disabled")
	}

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Инициализируем репозиторий (с метриками или без)
	var repository *reservationRepo.Repository

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		repository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		repository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	storeTimeout := time.Duration(cfg.Database.QueryTimeout) * time.Second

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(repository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		repository,
		txMgr,
		notifier,
		tablePlan,
		schedule,
		storeTimeout,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		repository,
		tablePlan,
		schedule,
		storeTimeout,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	getTablePlan := getTablePlanHandler.NewHandler(tablePlan, schedule, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, пути совместимы с legacy API)
	// ============================================================

	// Health check
	r.HandleFunc("/", healthHandler.Handle).Methods(http.MethodGet)

	// Создание брони
	r.HandleFunc("/reservation", createReservation.Handle).Methods(http.MethodPost)

	// Доступные слоты на дату для числа гостей
	r.HandleFunc("/reservation/availability/{date}/{numGuests}",
		getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer-токен с ролью admin)
	// ============================================================

	admin := r.PathPrefix("/reservation").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.TokenSecret))

	// Действующая конфигурация столов и расписания
	admin.HandleFunc("/config", getTablePlan.Handle).Methods(http.MethodGet)

	// Список броней на дату
	admin.HandleFunc("/{date:[0-9]{4}-[0-9]{2}-[0-9]{2}}",
		listReservations.Handle).Methods(http.MethodGet)

	// Удаление брони
	admin.HandleFunc("/{id:[0-9]+}", deleteReservation.Handle).Methods(http.MethodDelete)

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
