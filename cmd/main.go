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

	cancelAppointmentHandler "github.com/m04kA/AgendaPro-Service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/AgendaPro-Service/internal/api/handlers/create_appointment"
	getAdminStatsHandler "github.com/m04kA/AgendaPro-Service/internal/api/handlers/get_admin_stats"
	getAvailableSlotsHandler "github.com/m04kA/AgendaPro-Service/internal/api/handlers/get_available_slots"
	getScheduleHandler "github.com/m04kA/AgendaPro-Service/internal/api/handlers/get_schedule"
	listAppointmentsHandler "github.com/m04kA/AgendaPro-Service/internal/api/handlers/list_appointments"
	updateScheduleHandler "github.com/m04kA/AgendaPro-Service/internal/api/handlers/update_schedule"
	"github.com/m04kA/AgendaPro-Service/internal/api/middleware"
	"github.com/m04kA/AgendaPro-Service/internal/config"
	appointmentRepo "github.com/m04kA/AgendaPro-Service/internal/infra/storage/appointment"
	"github.com/m04kA/AgendaPro-Service/internal/infra/storage/migrations"
	scheduleRepo "github.com/m04kA/AgendaPro-Service/internal/infra/storage/schedule"
	appointmentsService "github.com/m04kA/AgendaPro-Service/internal/service/appointments"
	scheduleService "github.com/m04kA/AgendaPro-Service/internal/service/schedule"
	createAppointmentUC "github.com/m04kA/AgendaPro-Service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/AgendaPro-Service/internal/usecase/get_available_slots"
	"github.com/m04kA/AgendaPro-Service/pkg/dbmetrics"
	"github.com/m04kA/AgendaPro-Service/pkg/logger"
	"github.com/m04kA/AgendaPro-Service/pkg/metrics"
	"github.com/m04kA/AgendaPro-Service/pkg/simpletxmanager"
	"github.com/m04kA/AgendaPro-Service/pkg/txmanager"
)

func main() {
	// Подхватываем .env, если он есть (удобно при локальной разработке)
	_ = godotenv.Load()

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

	log.Info("Starting AgendaPro-Service...")
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
	log.Info("Successfully connected to database")

	// Накатываем схему и сидируем шаблоны расписания
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migrations.Run(migrateCtx, db); err != nil {
		cancelMigrate()
		log.Fatal("Failed to run migrations: %v", err)
	}
	cancelMigrate()
	log.Info("Database schema is up to date")

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(appointmentRepository, txMgr, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(appointmentRepository, scheduleRepository, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAdminStats := getAdminStatsHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Свободные слоты на дату
	api.HandleFunc("/slots/{date}", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи на приём
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()

	// Сводная статистика
	admin.HandleFunc("/stats", getAdminStats.Handle).Methods(http.MethodGet)

	// Все записи, сначала новые
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Отмена записи
	admin.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// Шаблоны расписания по дням недели
	admin.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Замена шаблона дня недели
	admin.HandleFunc("/schedule/{weekday}", updateSchedule.Handle).Methods(http.MethodPut)

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
