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
	"github.com/rs/cors"

	categoriesHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/categories"
	createAppointmentHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/create_appointment"
	getAvailabilityHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/get_availability"
	getDayFlagsHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/get_day_flags"
	getSlotTimesHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/get_slot_times"
	getUserAppointmentsHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/get_user_appointments"
	loginHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/login"
	monthlyReportHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/monthly_report"
	productsHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/products"
	refreshSlotTimesHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/refresh_slot_times"
	setDayFlagsHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/set_day_flags"
	signupHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/signup"
	updateSlotTimesHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/update_slot_times"
	updateStatusHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/update_status"
	uploadImageHandler "github.com/velumi/NailStudio-Backend/internal/api/handlers/upload_image"
	"github.com/velumi/NailStudio-Backend/internal/api/middleware"
	"github.com/velumi/NailStudio-Backend/internal/config"
	apptRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/appointment"
	categoryRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/category"
	dayoverrideRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/dayoverride"
	productRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/product"
	slottimesRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/slottimes"
	userRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/user"
	workdayRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/workday"
	appointmentsService "github.com/velumi/NailStudio-Backend/internal/service/appointments"
	categoriesService "github.com/velumi/NailStudio-Backend/internal/service/categories"
	productsService "github.com/velumi/NailStudio-Backend/internal/service/products"
	reportsService "github.com/velumi/NailStudio-Backend/internal/service/reports"
	slottimesService "github.com/velumi/NailStudio-Backend/internal/service/slottimes"
	usersService "github.com/velumi/NailStudio-Backend/internal/service/users"
	createAppointmentUC "github.com/velumi/NailStudio-Backend/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/velumi/NailStudio-Backend/internal/usecase/get_availability"
	setDayFlagsUC "github.com/velumi/NailStudio-Backend/internal/usecase/set_day_flags"
	updateStatusUC "github.com/velumi/NailStudio-Backend/internal/usecase/update_status"
	"github.com/velumi/NailStudio-Backend/pkg/dbmetrics"
	"github.com/velumi/NailStudio-Backend/pkg/logger"
	"github.com/velumi/NailStudio-Backend/pkg/metrics"
	"github.com/velumi/NailStudio-Backend/pkg/simpletxmanager"
	"github.com/velumi/NailStudio-Backend/pkg/txmanager"
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

	log.Info("Starting NailStudio-Backend...")
	log.Info("Configuration loaded from config.toml")

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

	// Интерфейс transaction manager (используется сервисами и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// БД-исполнитель и транзакции: с метриками или без
	var (
		dbExec dbmetrics.DBExecutor = db
		txMgr  TxManager            = simpletxmanager.NewTransactionManager(db)
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		dbExec = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	slotTimesRepository := slottimesRepo.NewRepository(dbExec)
	workdayRepository := workdayRepo.NewRepository(dbExec)
	appointmentRepository := apptRepo.NewRepository(dbExec)
	overrideRepository := dayoverrideRepo.NewRepository(dbExec)
	userRepository := userRepo.NewRepository(dbExec)
	productRepository := productRepo.NewRepository(dbExec)
	categoryRepository := categoryRepo.NewRepository(dbExec)

	// Инициализируем сервисы
	slotTimesSvc := slottimesService.NewService(
		slotTimesRepository,
		time.Duration(cfg.Slots.CacheTTLSeconds)*time.Second,
		log,
	)
	userSvc := usersService.NewService(userRepository, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	productSvc := productsService.NewService(productRepository, txMgr, log)
	categorySvc := categoriesService.NewService(categoryRepository, log)
	reportSvc := reportsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		slotTimesSvc,
		workdayRepository,
		appointmentRepository,
		overrideRepository,
		userSvc,
		txMgr,
		log,
	)
	updateStatusUseCase := updateStatusUC.NewUseCase(
		slotTimesSvc,
		appointmentRepository,
		workdayRepository,
		txMgr,
		log,
	)
	setDayFlagsUseCase := setDayFlagsUC.NewUseCase(
		slotTimesSvc,
		overrideRepository,
		workdayRepository,
		appointmentRepository,
		userSvc,
		txMgr,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		slotTimesSvc,
		workdayRepository,
		overrideRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateStatus := updateStatusHandler.NewHandler(updateStatusUseCase, log)
	getSlotTimes := getSlotTimesHandler.NewHandler(slotTimesSvc, log)
	updateSlotTimes := updateSlotTimesHandler.NewHandler(slotTimesSvc, userSvc, log)
	refreshSlotTimes := refreshSlotTimesHandler.NewHandler(slotTimesSvc, log)
	getDayFlags := getDayFlagsHandler.NewHandler(overrideRepository, log)
	setDayFlags := setDayFlagsHandler.NewHandler(setDayFlagsUseCase, log)
	signup := signupHandler.NewHandler(userSvc, log)
	login := loginHandler.NewHandler(userSvc, log)
	products := productsHandler.NewHandler(productSvc, log)
	categories := categoriesHandler.NewHandler(categorySvc, log)
	monthlyReport := monthlyReportHandler.NewHandler(reportSvc, userSvc, log)
	uploadImage := uploadImageHandler.NewHandler(cfg.Uploads.Dir, cfg.Uploads.MaxSizeMB, log)

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

	// Статика загруженных изображений
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir))))

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход
	api.HandleFunc("/auth/signup", signup.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Свободные слоты на дату
	api.HandleFunc("/availability/{date}", getAvailability.Handle).Methods(http.MethodGet)

	// Текущие времена слотов
	api.HandleFunc("/slot-times", getSlotTimes.Handle).Methods(http.MethodGet)

	// Флаги доступности дня
	api.HandleFunc("/days/{date}/flags", getDayFlags.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи на слот
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Смена статуса записи (закрытие с оплатой, отмена)
	protected.HandleFunc("/appointments/{id}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Записи пользователя
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для менеджеров) ---
	// Обновление времён слотов
	protected.HandleFunc("/slot-times", updateSlotTimes.Handle).Methods(http.MethodPut)

	// Сброс кеша времён слотов
	protected.HandleFunc("/slot-times/refresh", refreshSlotTimes.Handle).Methods(http.MethodPost)

	// Флаги доступности дня с блокировками
	protected.HandleFunc("/days/{date}/flags", setDayFlags.Handle).Methods(http.MethodPatch)

	// Месячный отчёт по выручке
	protected.HandleFunc("/reports/monthly", monthlyReport.Handle).Methods(http.MethodGet)

	// --- Склад расходников ---
	protected.HandleFunc("/products", products.List).Methods(http.MethodGet)
	protected.HandleFunc("/products", products.Create).Methods(http.MethodPost)
	protected.HandleFunc("/products/{name}", products.Update).Methods(http.MethodPut)
	protected.HandleFunc("/products/{name}", products.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/products/{name}/quantity", products.Adjust).Methods(http.MethodPatch)
	protected.HandleFunc("/products/{name}/use", products.Use).Methods(http.MethodPost)

	// --- Категории расходников ---
	protected.HandleFunc("/categories", categories.List).Methods(http.MethodGet)
	protected.HandleFunc("/categories", categories.Create).Methods(http.MethodPost)

	// --- Загрузка изображений ---
	protected.HandleFunc("/uploads", uploadImage.Handle).Methods(http.MethodPost)

	// CORS для фронтенда
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type", "X-User-ID"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	log.Info("Server exited")
}
