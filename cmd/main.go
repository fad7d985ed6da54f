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
	"github.com/redis/go-redis/v9"

	advanceStepHandler "github.com/m04kA/SMC-DonationService/internal/api/handlers/advance_step"
	clearStepHandler "github.com/m04kA/SMC-DonationService/internal/api/handlers/clear_step"
	createAppointmentHandler "github.com/m04kA/SMC-DonationService/internal/api/handlers/create_appointment"
	evaluateEligibilityHandler "github.com/m04kA/SMC-DonationService/internal/api/handlers/evaluate_eligibility"
	getAppointmentHandler "github.com/m04kA/SMC-DonationService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-DonationService/internal/api/handlers/get_available_slots"
	getEligibilityRulesHandler "github.com/m04kA/SMC-DonationService/internal/api/handlers/get_eligibility_rules"
	getFacilitiesHandler "github.com/m04kA/SMC-DonationService/internal/api/handlers/get_facilities"
	getFacilityHandler "github.com/m04kA/SMC-DonationService/internal/api/handlers/get_facility"
	getStepHandler "github.com/m04kA/SMC-DonationService/internal/api/handlers/get_step"
	getWaitingPeriodHandler "github.com/m04kA/SMC-DonationService/internal/api/handlers/get_waiting_period"
	guardStepHandler "github.com/m04kA/SMC-DonationService/internal/api/handlers/guard_step"
	resetFlowHandler "github.com/m04kA/SMC-DonationService/internal/api/handlers/reset_flow"
	"github.com/m04kA/SMC-DonationService/internal/api/middleware"
	"github.com/m04kA/SMC-DonationService/internal/config"
	"github.com/m04kA/SMC-DonationService/internal/eligibility"
	appointmentRepo "github.com/m04kA/SMC-DonationService/internal/infra/storage/appointment"
	facilityRepo "github.com/m04kA/SMC-DonationService/internal/infra/storage/facility"
	appointmentServiceClient "github.com/m04kA/SMC-DonationService/internal/integrations/appointmentservice"
	donorServiceClient "github.com/m04kA/SMC-DonationService/internal/integrations/donorservice"
	draftsService "github.com/m04kA/SMC-DonationService/internal/service/drafts"
	facilitiesService "github.com/m04kA/SMC-DonationService/internal/service/facilities"
	rulesService "github.com/m04kA/SMC-DonationService/internal/service/rules"
	stepsService "github.com/m04kA/SMC-DonationService/internal/service/steps"
	"github.com/m04kA/SMC-DonationService/internal/stepgate"
	advanceStepUC "github.com/m04kA/SMC-DonationService/internal/usecase/advance_step"
	checkWaitingPeriodUC "github.com/m04kA/SMC-DonationService/internal/usecase/check_waiting_period"
	evaluateEligibilityUC "github.com/m04kA/SMC-DonationService/internal/usecase/evaluate_eligibility"
	getAvailableSlotsUC "github.com/m04kA/SMC-DonationService/internal/usecase/get_available_slots"
	submitAppointmentUC "github.com/m04kA/SMC-DonationService/internal/usecase/submit_appointment"
	"github.com/m04kA/SMC-DonationService/internal/workflow"
	"github.com/m04kA/SMC-DonationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DonationService/pkg/logger"
	"github.com/m04kA/SMC-DonationService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию (CONFIG_PATH переопределяет путь)
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

	log.Info("Starting SMC-DonationService...")

	// Инициализируем метрики (если включены). Nil-коллектор ничего не пишет.
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

	// Репозитории работают через обёртку с метриками запросов
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	facilityRepository := facilityRepo.NewRepository(executor)
	appointmentRepository := appointmentRepo.NewRepository(executor)

	// Хранилище шагов флоу
	var stepStore stepgate.Store
	switch cfg.StepGate.Backend {
	case config.BackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		stepStore = stepgate.NewRedisStore(redisClient, cfg.StepGate.SessionTTL())
		log.Info("Step gate backend: redis (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.StepGate.SessionTTL())
	default:
		stepStore = stepgate.NewMemoryStore()
		log.Warn("Step gate backend: memory (state is lost on restart)")
	}
	gate := stepgate.NewGate(stepStore, metricsCollector, log)

	// Инициализируем интеграционных клиентов
	donorClient := donorServiceClient.NewClient(
		cfg.DonorService.URL,
		cfg.DonorService.TimeoutDuration(),
		log,
	)
	historyClient := appointmentServiceClient.NewClient(
		cfg.AppointmentService.URL,
		cfg.AppointmentService.TimeoutDuration(),
		metricsCollector,
		log,
	)
	log.Info("Integration clients initialized (DonorService=%s, AppointmentService=%s)",
		cfg.DonorService.URL, cfg.AppointmentService.URL)

	// Флоу записи собирается на каждый запрос из состояния клиента
	ruleSet := eligibility.DefaultRuleSet()
	flows := workflow.NewFactory(workflow.Deps{
		Donors:         donorClient,
		History:        historyClient,
		Drafts:         appointmentRepository,
		Gate:           gate,
		RuleSet:        ruleSet,
		Metrics:        metricsCollector,
		Logger:         log,
		HistoryTimeout: cfg.Workflow.HistoryTimeout(),
	})

	// Инициализируем сервисы
	facilitySvc := facilitiesService.NewService(facilityRepository, log)
	draftSvc := draftsService.NewService(appointmentRepository, log)
	stepSvc := stepsService.NewService(gate, log)
	ruleSvc := rulesService.NewService(ruleSet)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(facilityRepository, metricsCollector, log)
	checkWaitingPeriodUseCase := checkWaitingPeriodUC.NewUseCase(historyClient, cfg.Workflow.HistoryTimeout(), log)
	evaluateEligibilityUseCase := evaluateEligibilityUC.NewUseCase(flows, metricsCollector, log)
	advanceStepUseCase := advanceStepUC.NewUseCase(flows, facilityRepository, log)
	submitAppointmentUseCase := submitAppointmentUC.NewUseCase(flows, facilityRepository, log)

	// Инициализируем handlers
	getFacilities := getFacilitiesHandler.NewHandler(facilitySvc, log)
	getFacility := getFacilityHandler.NewHandler(facilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getEligibilityRules := getEligibilityRulesHandler.NewHandler(ruleSvc, log)
	getWaitingPeriod := getWaitingPeriodHandler.NewHandler(checkWaitingPeriodUseCase, log)
	evaluateEligibility := evaluateEligibilityHandler.NewHandler(evaluateEligibilityUseCase, log)
	getStep := getStepHandler.NewHandler(stepSvc, log)
	advanceStep := advanceStepHandler.NewHandler(advanceStepUseCase, log)
	guardStep := guardStepHandler.NewHandler(stepSvc, log)
	resetFlow := resetFlowHandler.NewHandler(stepSvc, log)
	clearStep := clearStepHandler.NewHandler(stepSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(submitAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(draftSvc, log)

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
	// PUBLIC ROUTES (без идентификации донора)
	// ============================================================

	// --- Учреждения ---
	api.HandleFunc("/facilities", getFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}", getFacility.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Анкета ---
	api.HandleFunc("/eligibility/rules", getEligibilityRules.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Donor-ID и X-Session-ID)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Проверка интервала перед началом записи
	protected.HandleFunc("/donors/me/waiting-period", getWaitingPeriod.Handle).Methods(http.MethodGet)

	// Оценка анкеты
	protected.HandleFunc("/eligibility/evaluate", evaluateEligibility.Handle).Methods(http.MethodPost)

	// --- Шаги флоу ---
	protected.HandleFunc("/flow/step", getStep.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/flow/step", advanceStep.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/flow/step", clearStep.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/flow/steps/{step}", guardStep.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/flow/reset", resetFlow.Handle).Methods(http.MethodPost)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{draftId}", getAppointment.Handle).Methods(http.MethodGet)

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
