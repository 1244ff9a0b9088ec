package main

import (
	"context"
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
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-job-market/internal/handlers"

	appjwt "github.com/sbilibin2017/gw-job-market/internal/jwt"
	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/repositories"
	"github.com/sbilibin2017/gw-job-market/internal/services"

	"github.com/sbilibin2017/gw-job-market/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-job-market API
// @version 1.0.0
// @description Job marketplace service: jobs, applications, chat, notifications and admin reporting
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		kafkaAddr, kafkaTopic, logLevel,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		kafkaAddr, kafkaTopic,
		logLevel,
		jwtSecret, jwtExp,
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

// parseConfig loads environment variables from a file and returns
// all application, database, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	kafkaAddr, kafkaTopic, logLevel string,
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

	// Kafka config, empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "job-market-activity")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	kafkaAddr, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Kafka writer for activity events, nil disables publishing
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		kafkaWriter = kw
		logger.Log.Infof("Kafka writer initialized, addr %s, topic %s", kafkaAddr, kafkaTopic)
	} else {
		logger.Log.Warn("Kafka address not configured, activity events disabled")
	}

	// Initialize JWT service
	jwt := appjwt.New(
		appjwt.WithSecretKey(jwtSecretKey),
		appjwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext

	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	jobReadRepo := repositories.NewJobReadRepository(db)
	jobWriteRepo := repositories.NewJobWriteRepository(db, txGetter)
	appReadRepo := repositories.NewApplicationReadRepository(db)
	appWriteRepo := repositories.NewApplicationWriteRepository(db, txGetter)
	convReadRepo := repositories.NewConversationReadRepository(db)
	convWriteRepo := repositories.NewConversationWriteRepository(db, txGetter)
	msgReadRepo := repositories.NewMessageReadRepository(db, txGetter)
	msgWriteRepo := repositories.NewMessageWriteRepository(db, txGetter)
	notifReadRepo := repositories.NewNotificationReadRepository(db, txGetter)
	notifWriteRepo := repositories.NewNotificationWriteRepository(db, txGetter)
	validationReadRepo := repositories.NewEmailValidationReadRepository(db)
	validationWriteRepo := repositories.NewEmailValidationWriteRepository(db, txGetter)
	reportReadRepo := repositories.NewReportReadRepository(db, txGetter)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, validationWriteRepo, jwt)
	jobService := services.NewJobService(jobReadRepo, jobWriteRepo, kafkaWriter)
	applicationService := services.NewApplicationService(appReadRepo, appWriteRepo, jobReadRepo, userReadRepo, notifWriteRepo, kafkaWriter)
	chatService := services.NewChatService(convReadRepo, convWriteRepo, msgReadRepo, msgWriteRepo, userReadRepo, notifWriteRepo, kafkaWriter)
	notificationService := services.NewNotificationService(notifReadRepo, notifWriteRepo)
	reportService := services.NewReportService(reportReadRepo, validationReadRepo)
	adminService := services.NewAdminService(userReadRepo, userReadRepo, userWriteRepo, jobWriteRepo, jobReadRepo, appReadRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	postJobHandler := handlers.NewPostJobHandler(jobService, jwt)
	listJobsHandler := handlers.NewListJobsHandler(jobService)
	getJobHandler := handlers.NewGetJobHandler(jobService)
	myJobsHandler := handlers.NewMyJobsHandler(jobService, jwt)
	applyHandler := handlers.NewApplyHandler(applicationService, jwt)
	myApplicationsHandler := handlers.NewMyApplicationsHandler(applicationService, jwt)
	receivedApplicationsHandler := handlers.NewReceivedApplicationsHandler(applicationService, jwt)
	decideApplicationHandler := handlers.NewDecideApplicationHandler(applicationService, jwt)
	startConversationHandler := handlers.NewStartConversationHandler(chatService, jwt)
	listConversationsHandler := handlers.NewListConversationsHandler(chatService, jwt)
	sendMessageHandler := handlers.NewSendMessageHandler(chatService, jwt)
	fetchMessagesHandler := handlers.NewFetchMessagesHandler(chatService, jwt)
	unreadCountHandler := handlers.NewUnreadCountHandler(chatService, jwt)
	notificationsHandler := handlers.NewNotificationsHandler(notificationService, jwt)
	adminDashboardHandler := handlers.NewAdminDashboardHandler(reportService, jwt)
	adminListUsersHandler := handlers.NewAdminListUsersHandler(adminService, jwt)
	adminListJobsHandler := handlers.NewAdminListJobsHandler(adminService, jwt)
	adminListApplicationsHandler := handlers.NewAdminListApplicationsHandler(adminService, jwt)
	adminDeleteUserHandler := handlers.NewAdminDeleteUserHandler(adminService, jwt)
	adminDeleteJobHandler := handlers.NewAdminDeleteJobHandler(adminService, jwt)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))

		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwt))

			r.Post("/jobs", postJobHandler)
			r.Get("/jobs", listJobsHandler)
			r.Get("/jobs/mine", myJobsHandler)
			r.Get("/jobs/{jobID}", getJobHandler)
			r.Post("/jobs/{jobID}/applications", applyHandler)

			r.Get("/applications/mine", myApplicationsHandler)
			r.Get("/applications/received", receivedApplicationsHandler)
			r.Patch("/applications/{applicationID}", decideApplicationHandler)

			r.Post("/conversations", startConversationHandler)
			r.Get("/conversations", listConversationsHandler)
			r.Post("/conversations/{conversationID}/messages", sendMessageHandler)
			r.Get("/conversations/{conversationID}/messages", fetchMessagesHandler)
			r.Get("/messages/unread_count", unreadCountHandler)

			r.Get("/notifications", notificationsHandler)

			r.Get("/admin/dashboard", adminDashboardHandler)
			r.Get("/admin/users", adminListUsersHandler)
			r.Get("/admin/jobs", adminListJobsHandler)
			r.Get("/admin/applications", adminListApplicationsHandler)
			r.Delete("/admin/users/{userID}", adminDeleteUserHandler)
			r.Delete("/admin/jobs/{jobID}", adminDeleteJobHandler)
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
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
