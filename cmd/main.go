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

	adjustCounterHandler "github.com/m04kA/HRS-EstimateService/internal/api/handlers/adjust_counter"
	applyDateRangeHandler "github.com/m04kA/HRS-EstimateService/internal/api/handlers/apply_date_range"
	createSessionHandler "github.com/m04kA/HRS-EstimateService/internal/api/handlers/create_session"
	deleteSessionHandler "github.com/m04kA/HRS-EstimateService/internal/api/handlers/delete_session"
	getCatalogHandler "github.com/m04kA/HRS-EstimateService/internal/api/handlers/get_catalog"
	getEstimateHandler "github.com/m04kA/HRS-EstimateService/internal/api/handlers/get_estimate"
	getMonthGridHandler "github.com/m04kA/HRS-EstimateService/internal/api/handlers/get_month_grid"
	getSessionHandler "github.com/m04kA/HRS-EstimateService/internal/api/handlers/get_session"
	resetDatesHandler "github.com/m04kA/HRS-EstimateService/internal/api/handlers/reset_dates"
	selectDateHandler "github.com/m04kA/HRS-EstimateService/internal/api/handlers/select_date"
	syncCatalogHandler "github.com/m04kA/HRS-EstimateService/internal/api/handlers/sync_catalog"
	"github.com/m04kA/HRS-EstimateService/internal/api/middleware"
	"github.com/m04kA/HRS-EstimateService/internal/config"
	catalogRepo "github.com/m04kA/HRS-EstimateService/internal/infra/storage/catalog"
	sessionRepo "github.com/m04kA/HRS-EstimateService/internal/infra/storage/session"
	contentServiceClient "github.com/m04kA/HRS-EstimateService/internal/integrations/contentservice"
	catalogService "github.com/m04kA/HRS-EstimateService/internal/service/catalog"
	sessionsService "github.com/m04kA/HRS-EstimateService/internal/service/sessions"
	adjustCounterUC "github.com/m04kA/HRS-EstimateService/internal/usecase/adjust_counter"
	applyDateRangeUC "github.com/m04kA/HRS-EstimateService/internal/usecase/apply_date_range"
	calculateEstimateUC "github.com/m04kA/HRS-EstimateService/internal/usecase/calculate_estimate"
	getMonthGridUC "github.com/m04kA/HRS-EstimateService/internal/usecase/get_month_grid"
	selectDateUC "github.com/m04kA/HRS-EstimateService/internal/usecase/select_date"
	"github.com/m04kA/HRS-EstimateService/pkg/dbmetrics"
	"github.com/m04kA/HRS-EstimateService/pkg/logger"
	"github.com/m04kA/HRS-EstimateService/pkg/metrics"
	"github.com/m04kA/HRS-EstimateService/pkg/simpletxmanager"
	"github.com/m04kA/HRS-EstimateService/pkg/txmanager"
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

	log.Info("Starting HRS-EstimateService...")
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

	// Инициализируем клиента сервиса контента (CMS с каталогом залов и номеров)
	contentClient := contentServiceClient.NewClient(
		cfg.ContentService.URL,
		time.Duration(cfg.ContentService.Timeout)*time.Second,
		log,
	)
	log.Info("Content service client initialized (url=%s, timeout=%ds)",
		cfg.ContentService.URL, cfg.ContentService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		catalogRepository *catalogRepo.Repository
		sessionRepository *sessionRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		catalogRepository = catalogRepo.NewRepository(db)
		sessionRepository = sessionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(
		catalogRepository,
		contentClient,
		log,
	)
	sessionsSvc := sessionsService.NewService(
		sessionRepository,
		catalogRepository,
		log,
	)

	// Инициализируем use cases
	getMonthGridUseCase := getMonthGridUC.NewUseCase(log)
	selectDateUseCase := selectDateUC.NewUseCase(sessionRepository, txMgr, log)
	applyDateRangeUseCase := applyDateRangeUC.NewUseCase(sessionRepository, txMgr, log)
	adjustCounterUseCase := adjustCounterUC.NewUseCase(sessionRepository, txMgr, log)
	calculateEstimateUseCase := calculateEstimateUC.NewUseCase(sessionRepository, catalogRepository, log)

	// Инициализируем handlers
	getMonthGrid := getMonthGridHandler.NewHandler(getMonthGridUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	syncCatalog := syncCatalogHandler.NewHandler(catalogSvc, log)
	createSession := createSessionHandler.NewHandler(sessionsSvc, log)
	getSession := getSessionHandler.NewHandler(sessionsSvc, log)
	deleteSession := deleteSessionHandler.NewHandler(sessionsSvc, log)
	resetDates := resetDatesHandler.NewHandler(sessionsSvc, log)
	selectDate := selectDateHandler.NewHandler(selectDateUseCase, log)
	applyDateRange := applyDateRangeHandler.NewHandler(applyDateRangeUseCase, log)
	adjustCounter := adjustCounterHandler.NewHandler(adjustCounterUseCase, log)
	getEstimate := getEstimateHandler.NewHandler(calculateEstimateUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Сетка календаря: запрошенный месяц и следующий за ним
	api.HandleFunc("/calendar", getMonthGrid.Handle).Methods(http.MethodGet)

	// Каталог залов и типов номеров
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Синхронизация каталога из сервиса контента
	protected.HandleFunc("/catalog/sync", syncCatalog.Handle).Methods(http.MethodPost)

	// --- Сессии расчёта ---
	// Создание сессии
	protected.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Текущее состояние сессии
	protected.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)

	// Удаление сессии
	protected.HandleFunc("/sessions/{sessionId}", deleteSession.Handle).Methods(http.MethodDelete)

	// Клик по дню календаря (выбор заезда/выезда)
	protected.HandleFunc("/sessions/{sessionId}/select-date", selectDate.Handle).Methods(http.MethodPost)

	// Подтверждение выбранного диапазона дат
	protected.HandleFunc("/sessions/{sessionId}/apply-dates", applyDateRange.Handle).Methods(http.MethodPost)

	// Сброс выбранных дат
	protected.HandleFunc("/sessions/{sessionId}/reset-dates", resetDates.Handle).Methods(http.MethodPost)

	// Изменение счётчиков залов и номеров
	protected.HandleFunc("/sessions/{sessionId}/counters", adjustCounter.Handle).Methods(http.MethodPost)

	// Расчёт стоимости
	protected.HandleFunc("/sessions/{sessionId}/estimate", getEstimate.Handle).Methods(http.MethodGet)

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
