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

	cancelBookingHandler "github.com/m04kA/SMC-PhotographerService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-PhotographerService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-PhotographerService/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-PhotographerService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-PhotographerService/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/m04kA/SMC-PhotographerService/internal/api/handlers/get_client_bookings"
	getPhotographerBookingsHandler "github.com/m04kA/SMC-PhotographerService/internal/api/handlers/get_photographer_bookings"
	getSlotCatalogHandler "github.com/m04kA/SMC-PhotographerService/internal/api/handlers/get_slot_catalog"
	transitionBookingHandler "github.com/m04kA/SMC-PhotographerService/internal/api/handlers/transition_booking"
	"github.com/m04kA/SMC-PhotographerService/internal/api/middleware"
	"github.com/m04kA/SMC-PhotographerService/internal/config"
	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	"github.com/m04kA/SMC-PhotographerService/internal/infra/notify"
	bookingRepo "github.com/m04kA/SMC-PhotographerService/internal/infra/storage/booking"
	profileServiceClient "github.com/m04kA/SMC-PhotographerService/internal/integrations/profileservice"
	bookingsService "github.com/m04kA/SMC-PhotographerService/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-PhotographerService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-PhotographerService/internal/usecase/get_availability"
	transitionBookingUC "github.com/m04kA/SMC-PhotographerService/internal/usecase/transition_booking"
	"github.com/m04kA/SMC-PhotographerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PhotographerService/pkg/logger"
	"github.com/m04kA/SMC-PhotographerService/pkg/metrics"
	"github.com/m04kA/SMC-PhotographerService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-PhotographerService/pkg/txmanager"
	"github.com/m04kA/SMC-PhotographerService/pkg/types"
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

	log.Info("Starting SMC-PhotographerService...")
	log.Info("Configuration loaded from config.toml")

	// Собираем каталог слотов (дефолтный или переопределённый конфигом)
	catalog, err := buildCatalog(cfg.Catalog)
	if err != nil {
		log.Fatal("Failed to build slot catalog: %v", err)
	}
	log.Info("Slot catalog loaded: %d slots", len(catalog))

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

	// Инициализируем клиент ProfileService
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ProfileService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем publisher уведомлений
	notifier, err := notify.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, log)
	if err != nil {
		log.Fatal("Failed to initialize notification publisher: %v", err)
	}
	defer notifier.Close()

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		profileClient,
		notifier,
		catalog,
		log,
	)

	transitionBookingUseCase := transitionBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		notifier,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		catalog,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	transitionBooking := transitionBookingHandler.NewHandler(transitionBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(transitionBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getPhotographerBookings := getPhotographerBookingsHandler.NewHandler(bookingSvc, log)
	getSlotCatalog := getSlotCatalogHandler.NewHandler(catalog, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог слотов
	api.HandleFunc("/slots", getSlotCatalog.Handle).Methods(http.MethodGet)

	// Доступность слотов фотографа на дату
	api.HandleFunc("/photographers/{photographerId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Бронирования ---
	// Создание заявки на бронирование
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Подтверждение или отклонение заявки фотографом
	protected.HandleFunc("/bookings/{bookingId}/status", transitionBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Удаление бронирования
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// Расписание фотографа
	protected.HandleFunc("/photographers/{photographerId}/bookings",
		getPhotographerBookings.Handle).Methods(http.MethodGet)

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

// buildCatalog собирает каталог слотов из конфигурации.
// Пустая секция [catalog] означает дефолтный каталог.
func buildCatalog(cfg config.CatalogConfig) (domain.Catalog, error) {
	if len(cfg.Slots) == 0 {
		return domain.DefaultCatalog(), nil
	}

	catalog := make(domain.Catalog, 0, len(cfg.Slots))
	for _, slot := range cfg.Slots {
		slotTime, err := types.NewSlotTimeFromString(slot.Time)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", slot.ID, err)
		}
		catalog = append(catalog, domain.Slot{
			ID:        slot.ID,
			Time:      slotTime,
			BasePrice: slot.BasePrice,
		})
	}
	return catalog, nil
}
