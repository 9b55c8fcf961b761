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

	confirmBookingHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/create_booking"
	createRestaurantHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/create_restaurant"
	createTableHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/create_table"
	declineBookingHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/decline_booking"
	freeTableHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/free_table"
	getAvailableSlotsHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/get_booking"
	getFloorPlanHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/get_floor_plan"
	getRestaurantHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/get_restaurant"
	getRestaurantBookingsHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/get_restaurant_bookings"
	listTablesHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/list_tables"
	seatBookingHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/seat_booking"
	updateWorkHoursHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/update_work_hours"
	walkInHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/walk_in"
	"github.com/m04kA/SMC-TableBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-TableBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/booking"
	restaurantRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/restaurant"
	bookingsService "github.com/m04kA/SMC-TableBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-TableBookingService/internal/service/expiry"
	restaurantsService "github.com/m04kA/SMC-TableBookingService/internal/service/restaurants"
	createBookingUC "github.com/m04kA/SMC-TableBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-TableBookingService/internal/usecase/get_available_slots"
	getFloorPlanUC "github.com/m04kA/SMC-TableBookingService/internal/usecase/get_floor_plan"
	"github.com/m04kA/SMC-TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableBookingService/pkg/logger"
	"github.com/m04kA/SMC-TableBookingService/pkg/metrics"
	"github.com/m04kA/SMC-TableBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-TableBookingService...")

	location, err := cfg.Restaurant.Location()
	if err != nil {
		log.Fatal("Failed to load restaurant timezone %q: %v", cfg.Restaurant.Timezone, err)
	}
	policy := cfg.Booking.Policy()
	log.Info("Booking policy: interval=%dm, lead=%dm, gap=%dm, stay=%dm, pending_ttl=%ds, timezone=%s",
		policy.SlotIntervalMinutes, policy.MinLeadMinutes, policy.MinGapMinutes, policy.MinStayMinutes,
		policy.PendingTTLSeconds, location)

	// Метрики; при выключенных метриках nil, все методы безопасны
	var metricsCollector *metrics.Metrics
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	stopMetricsCh := make(chan struct{})
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := wrappedDB.PingContext(pingCtx); err != nil {
		pingCancel()
		log.Fatal("Failed to ping database: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории и менеджер транзакций
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	restaurantRepository := restaurantRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Сервисы
	restaurantSvc := restaurantsService.NewService(restaurantRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		restaurantRepository,
		txMgr,
		policy,
		location,
		metricsCollector,
		log,
	)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		restaurantRepository,
		txMgr,
		policy,
		location,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		restaurantRepository,
		bookingRepository,
		policy,
		location,
		metricsCollector,
		log,
	)
	getFloorPlanUseCase := getFloorPlanUC.NewUseCase(
		restaurantRepository,
		bookingRepository,
		policy,
		location,
		log,
	)

	// Фоновое автоотклонение просроченных заявок
	var sweeper *expiry.Sweeper
	if cfg.Expiry.Enabled {
		sweeper = expiry.NewSweeper(
			bookingRepository,
			cfg.Expiry.SweepInterval(),
			policy.PendingTTL(),
			location,
			metricsCollector,
			log,
		)
		sweeper.Start(context.Background())
		log.Info("Expiry sweeper started (interval=%s, ttl=%s)", cfg.Expiry.SweepInterval(), policy.PendingTTL())
	}

	// Handlers
	getRestaurant := getRestaurantHandler.NewHandler(restaurantSvc, log)
	listTables := listTablesHandler.NewHandler(restaurantSvc, log)
	createRestaurant := createRestaurantHandler.NewHandler(restaurantSvc, log)
	updateWorkHours := updateWorkHoursHandler.NewHandler(restaurantSvc, log)
	createTable := createTableHandler.NewHandler(restaurantSvc, log)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getFloorPlan := getFloorPlanHandler.NewHandler(getFloorPlanUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)

	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getRestaurantBookings := getRestaurantBookingsHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	declineBooking := declineBookingHandler.NewHandler(bookingSvc, log)
	seatBooking := seatBookingHandler.NewHandler(bookingSvc, log)
	freeTable := freeTableHandler.NewHandler(bookingSvc, log)
	walkIn := walkInHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (гости, без аутентификации)
	// ============================================================

	api.HandleFunc("/restaurants/{restaurantId}", getRestaurant.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}/tables", listTables.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}/tables/{tableId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}/floor-plan", getFloorPlan.Handle).Methods(http.MethodGet)

	// Заявка гостя и отслеживание ее статуса
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (персонал, требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Ресторан и столы ---
	protected.HandleFunc("/restaurants", createRestaurant.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/restaurants/{restaurantId}/work-hours", updateWorkHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/restaurants/{restaurantId}/tables", createTable.Handle).Methods(http.MethodPost)

	// --- Очередь заявок ---
	protected.HandleFunc("/restaurants/{restaurantId}/bookings", getRestaurantBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/decline", declineBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/seat", seatBooking.Handle).Methods(http.MethodPatch)

	// --- Зал ---
	protected.HandleFunc("/restaurants/{restaurantId}/tables/{tableId}/free", freeTable.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/restaurants/{restaurantId}/tables/{tableId}/walk-in", walkIn.Handle).Methods(http.MethodPost)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if sweeper != nil {
		sweeper.Stop()
		log.Info("Expiry sweeper stopped")
	}

	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
