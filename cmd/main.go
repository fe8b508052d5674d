package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/Evecotrip/god-aurumx-sub000/internal/clients"
	"github.com/Evecotrip/god-aurumx-sub000/internal/handlers"
	consolejwt "github.com/Evecotrip/god-aurumx-sub000/internal/jwt"
	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
	"github.com/Evecotrip/god-aurumx-sub000/internal/middlewares"
	"github.com/Evecotrip/god-aurumx-sub000/internal/repositories"
	"github.com/Evecotrip/god-aurumx-sub000/internal/services"
	"github.com/Evecotrip/god-aurumx-sub000/internal/session"

	_ "github.com/Evecotrip/god-aurumx-sub000/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title master-node-console API
// @version 1.0.0
// @description Admin gateway for reviewing add-money requests, configuring deposit currencies and browsing the user directory
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, kafkaAuditTopic,
		platformBaseURL, platformTimeoutSecond, tokenTTLSecond,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, kafkaAuditTopic,
		platformBaseURL, platformTimeoutSecond, tokenTTLSecond,
		jwtSecret, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, platform API, logging and JWT
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, kafkaAuditTopic string,
	platformBaseURL string, platformTimeoutSecond, tokenTTLSecond int,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config. An empty broker disables audit publishing.
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaAuditTopic = getEnv("KAFKA_AUDIT_TOPIC", "master-node-audit")

	// Platform API config
	platformBaseURL = getEnv("PLATFORM_API_BASE_URL", "")
	if platformBaseURL == "" {
		err = errors.New("PLATFORM_API_BASE_URL is required")
		return
	}
	if platformTimeoutSecond, err = strconv.Atoi(getEnv("PLATFORM_API_TIMEOUT_SECOND", "15")); err != nil {
		return
	}
	if tokenTTLSecond, err = strconv.Atoi(getEnv("TOKEN_TTL_SECOND", "86400")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, platform
// API clients and HTTP server. It sets up routes, applies middleware,
// and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, kafkaAuditTopic string,
	platformBaseURL string, platformTimeoutSecond, tokenTTLSecond int,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Initialize JWT service
	jwt := consolejwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	operatorReadRepo := repositories.NewOperatorReadRepository(db)
	operatorWriteRepo := repositories.NewOperatorWriteRepository(db)
	auditRepo := repositories.NewAuditWriteRepository(db)

	// Initialize audit recorder. Publishing is disabled without a broker.
	auditRecorder := services.NewAuditRecorder(auditRepo, nil)
	if kafkaBroker != "" {
		kafkaWriter := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaAuditTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		auditRecorder = services.NewAuditRecorder(auditRepo, kafkaWriter)
		log.Infof("Audit publishing enabled: broker %s, topic %s", kafkaBroker, kafkaAuditTopic)
	}

	// Initialize platform API clients
	caller := clients.NewCaller(platformBaseURL, time.Duration(platformTimeoutSecond)*time.Second)
	tokenClient := clients.NewTokenClient(caller)
	requestsClient := clients.NewRequestsClient(caller)
	currenciesClient := clients.NewCurrenciesClient(caller)
	usersClient := clients.NewUsersClient(caller)

	// Initialize token store and resolver
	tokenStore := session.NewStore(rdb, time.Duration(tokenTTLSecond)*time.Second)
	tokenResolver := session.NewResolver(tokenStore, tokenClient)

	// Initialize services
	authService := services.NewAuthService(operatorReadRepo, operatorWriteRepo, jwt, tokenStore)
	reviewService := services.NewRequestReviewService(tokenResolver, requestsClient, auditRecorder)
	currencyService := services.NewCurrencyConfigService(tokenResolver, currenciesClient, auditRecorder)
	directoryService := services.NewUserDirectoryService(tokenResolver, usersClient)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	logoutHandler := handlers.NewLogoutHandler(authService, jwt)

	requestsListHandler := handlers.NewRequestsListHandler(reviewService, jwt)
	requestGetHandler := handlers.NewRequestGetHandler(reviewService, jwt)
	sendBankDetailsHandler := handlers.NewSendBankDetailsHandler(reviewService, jwt)
	verifyHandler := handlers.NewVerifyHandler(reviewService, jwt)
	rejectHandler := handlers.NewRejectHandler(reviewService, jwt)

	currenciesListHandler := handlers.NewCurrenciesListHandler(currencyService, jwt)
	currencyCreateHandler := handlers.NewCurrencyCreateHandler(currencyService, jwt)
	currencyUpdateHandler := handlers.NewCurrencyUpdateHandler(currencyService, jwt)
	qrUploadHandler := handlers.NewQRUploadHandler(currencyService, jwt)
	currencyDeleteHandler := handlers.NewCurrencyDeleteHandler(currencyService, jwt)

	usersListHandler := handlers.NewUsersListHandler(directoryService, jwt)
	userStatsHandler := handlers.NewUserStatsHandler(directoryService, jwt)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwt))

			r.Post("/logout", logoutHandler)

			r.Get("/requests", requestsListHandler)
			r.Get("/requests/{id}", requestGetHandler)
			r.Post("/requests/{id}/send-bank-details", sendBankDetailsHandler)
			r.Post("/requests/{id}/verify", verifyHandler)
			r.Post("/requests/{id}/reject", rejectHandler)

			r.Get("/currencies", currenciesListHandler)
			r.Post("/currencies", currencyCreateHandler)
			r.Put("/currencies/{code}", currencyUpdateHandler)
			r.Post("/currencies/{code}/qr", qrUploadHandler)
			r.Delete("/currencies/{code}", currencyDeleteHandler)

			r.Get("/users", usersListHandler)
			r.Get("/users/{id}/stats", userStatsHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
