package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	addFavoriteHandler "github.com/m04kA/TurnIt/internal/api/handlers/add_favorite"
	cancelReservationHandler "github.com/m04kA/TurnIt/internal/api/handlers/cancel_reservation"
	createPaymentPreferenceHandler "github.com/m04kA/TurnIt/internal/api/handlers/create_payment_preference"
	getPlaceHandler "github.com/m04kA/TurnIt/internal/api/handlers/get_place"
	getProfileHandler "github.com/m04kA/TurnIt/internal/api/handlers/get_profile"
	getTurnoHandler "github.com/m04kA/TurnIt/internal/api/handlers/get_turno"
	getUserReservationsHandler "github.com/m04kA/TurnIt/internal/api/handlers/get_user_reservations"
	listPlacesHandler "github.com/m04kA/TurnIt/internal/api/handlers/list_places"
	listTurnosHandler "github.com/m04kA/TurnIt/internal/api/handlers/list_turnos"
	publishTurnoHandler "github.com/m04kA/TurnIt/internal/api/handlers/publish_turno"
	registerPlaceHandler "github.com/m04kA/TurnIt/internal/api/handlers/register_place"
	registerUserHandler "github.com/m04kA/TurnIt/internal/api/handlers/register_user"
	removeFavoriteHandler "github.com/m04kA/TurnIt/internal/api/handlers/remove_favorite"
	reserveBySlotHandler "github.com/m04kA/TurnIt/internal/api/handlers/reserve_by_slot"
	reserveTurnoHandler "github.com/m04kA/TurnIt/internal/api/handlers/reserve_turno"
	turnosLiveHandler "github.com/m04kA/TurnIt/internal/api/handlers/turnos_live"
	"github.com/m04kA/TurnIt/internal/api/middleware"
	"github.com/m04kA/TurnIt/internal/config"
	placeRepo "github.com/m04kA/TurnIt/internal/infra/storage/place"
	turnoRepo "github.com/m04kA/TurnIt/internal/infra/storage/turno"
	userRepo "github.com/m04kA/TurnIt/internal/infra/storage/user"
	"github.com/m04kA/TurnIt/internal/integrations/geocoding"
	"github.com/m04kA/TurnIt/internal/integrations/mercadopago"
	"github.com/m04kA/TurnIt/internal/realtime"
	paymentsService "github.com/m04kA/TurnIt/internal/service/payments"
	placesService "github.com/m04kA/TurnIt/internal/service/places"
	turnosService "github.com/m04kA/TurnIt/internal/service/turnos"
	usersService "github.com/m04kA/TurnIt/internal/service/users"
	cancelReservationUC "github.com/m04kA/TurnIt/internal/usecase/cancel_reservation"
	getNearbyPlacesUC "github.com/m04kA/TurnIt/internal/usecase/get_nearby_places"
	publishTurnoUC "github.com/m04kA/TurnIt/internal/usecase/publish_turno"
	reserveTurnoUC "github.com/m04kA/TurnIt/internal/usecase/reserve_turno"
	"github.com/m04kA/TurnIt/pkg/dbmetrics"
	"github.com/m04kA/TurnIt/pkg/logger"
	"github.com/m04kA/TurnIt/pkg/metrics"
	"github.com/m04kA/TurnIt/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting TurnIt...")
	log.Info("Configuration loaded from %s", *configPath)

	location, err := cfg.App.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.App.Timezone, err)
	}

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

	// При выключенных метриках обертка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	dbPingCtx, dbPingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := wrappedDB.PingContext(dbPingCtx); err != nil {
		dbPingCancel()
		log.Fatal("Failed to ping database: %v", err)
	}
	dbPingCancel()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Redis для кэша геокодирования
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unavailable at %s, geocoding cache will be bypassed: %v", cfg.Redis.Addr, err)
	}
	pingCancel()

	// Инициализируем интеграционных клиентов
	geocoder := geocoding.NewCachedGeocoder(
		geocoding.NewClient(
			cfg.Geocoding.BaseURL,
			cfg.Geocoding.UserAgent,
			time.Duration(cfg.Geocoding.Timeout)*time.Second,
			log,
		),
		redisClient,
		time.Duration(cfg.Geocoding.CacheTTL)*time.Second,
		metricsCollector,
		log,
	)
	paymentClient := mercadopago.NewClient(
		cfg.MercadoPago.APIURL,
		cfg.MercadoPago.CheckoutDomain,
		cfg.MercadoPago.AccessToken,
		mercadopago.BackURLs{
			Success: cfg.MercadoPago.SuccessURL,
			Failure: cfg.MercadoPago.FailureURL,
			Pending: cfg.MercadoPago.PendingURL,
		},
		time.Duration(cfg.MercadoPago.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Geocoding=%s timeout=%ds, MercadoPago=%s timeout=%ds)",
		cfg.Geocoding.BaseURL, cfg.Geocoding.Timeout, cfg.MercadoPago.APIURL, cfg.MercadoPago.Timeout)

	// Лента изменений турнос
	hub := realtime.NewHub(cfg.CORS.AllowedOrigins, log)

	// Инициализируем репозитории
	userRepository := userRepo.NewRepository(wrappedDB)
	placeRepository := placeRepo.NewRepository(wrappedDB)
	turnoRepository := turnoRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	userSvc := usersService.NewService(userRepository, placeRepository, geocoder, log)
	placeSvc := placesService.NewService(placeRepository, userRepository, geocoder, log)
	turnoSvc := turnosService.NewService(turnoRepository, placeRepository, txMgr, log)
	paymentSvc := paymentsService.NewService(paymentClient, log)

	// Инициализируем use cases
	reserveTurnoUseCase := reserveTurnoUC.NewUseCase(turnoRepository, txMgr, hub, metricsCollector, log)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(turnoRepository, txMgr, hub, metricsCollector, log)
	publishTurnoUseCase := publishTurnoUC.NewUseCase(placeRepository, turnoRepository, hub, metricsCollector, location, log)
	getNearbyPlacesUseCase := getNearbyPlacesUC.NewUseCase(placeRepository, userRepository, log)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(userSvc, log)
	getProfile := getProfileHandler.NewHandler(userSvc, log)
	addFavorite := addFavoriteHandler.NewHandler(userSvc, log)
	removeFavorite := removeFavoriteHandler.NewHandler(userSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(turnoSvc, log)
	listPlaces := listPlacesHandler.NewHandler(getNearbyPlacesUseCase, log)
	getPlace := getPlaceHandler.NewHandler(placeSvc, log)
	registerPlace := registerPlaceHandler.NewHandler(placeSvc, log)
	listTurnos := listTurnosHandler.NewHandler(turnoSvc, log)
	getTurno := getTurnoHandler.NewHandler(turnoSvc, log)
	publishTurno := publishTurnoHandler.NewHandler(publishTurnoUseCase, log)
	reserveTurno := reserveTurnoHandler.NewHandler(reserveTurnoUseCase, log)
	reserveBySlot := reserveBySlotHandler.NewHandler(reserveTurnoUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	turnosLive := turnosLiveHandler.NewHandler(placeSvc, hub, log)
	createPaymentPreference := createPaymentPreferenceHandler.NewHandler(paymentSvc, log)

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		log.Info("Rate limiting enabled (rps=%.2f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	registerAPI(r, auth, limiter, []apiRoute{
		// --- Публичные (токен опционален) ---
		{method: http.MethodGet, path: "/places", handler: listPlaces.Handle},
		{method: http.MethodGet, path: "/places/{placeId}", handler: getPlace.Handle},
		{method: http.MethodGet, path: "/places/{placeId}/turnos", handler: listTurnos.Handle},
		{method: http.MethodGet, path: "/places/{placeId}/turnos/live", handler: turnosLive.Handle},
		{method: http.MethodGet, path: "/turnos/{turnoId}", handler: getTurno.Handle},

		// --- Пользователи ---
		{method: http.MethodPost, path: "/users", handler: registerUser.Handle, protected: true},
		{method: http.MethodGet, path: "/users/me", handler: getProfile.Handle, protected: true},
		{method: http.MethodPut, path: "/users/me/favorites/{placeId}", handler: addFavorite.Handle, protected: true},
		{method: http.MethodDelete, path: "/users/me/favorites/{placeId}", handler: removeFavorite.Handle, protected: true},
		{method: http.MethodGet, path: "/users/me/reservations", handler: getUserReservations.Handle, protected: true},

		// --- Заведения ---
		{method: http.MethodPost, path: "/places", handler: registerPlace.Handle, protected: true},
		{method: http.MethodPost, path: "/places/{placeId}/turnos", handler: publishTurno.Handle, protected: true},
		{method: http.MethodPost, path: "/places/{placeId}/reservations", handler: reserveBySlot.Handle, protected: true},

		// --- Турнос ---
		{method: http.MethodPost, path: "/turnos/{turnoId}/reservations", handler: reserveTurno.Handle, protected: true},
		{method: http.MethodDelete, path: "/turnos/{turnoId}/reservations", handler: cancelReservation.Handle, protected: true},

		// --- Оплата ---
		{method: http.MethodPost, path: "/payments/preferences", handler: createPaymentPreference.Handle, protected: true},
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposedHeaders:   []string{middleware.HeaderRequestID},
		AllowCredentials: true,
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
	srv.RegisterOnShutdown(hub.Close)

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

	close(stopMetricsCh)
	if limiter != nil {
		limiter.Stop()
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
