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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	getCatalogHandler "github.com/zanaya/ZNY-BookingService/internal/api/handlers/get_catalog"
	healthHandler "github.com/zanaya/ZNY-BookingService/internal/api/handlers/health"
	submitBookingHandler "github.com/zanaya/ZNY-BookingService/internal/api/handlers/submit_booking"
	"github.com/zanaya/ZNY-BookingService/internal/api/middleware"
	"github.com/zanaya/ZNY-BookingService/internal/config"
	"github.com/zanaya/ZNY-BookingService/internal/delivery/email"
	"github.com/zanaya/ZNY-BookingService/internal/domain"
	"github.com/zanaya/ZNY-BookingService/internal/infra/catalogfile"
	catalogRepo "github.com/zanaya/ZNY-BookingService/internal/infra/storage/catalog"
	submitBookingUC "github.com/zanaya/ZNY-BookingService/internal/usecase/submit_booking"
	"github.com/zanaya/ZNY-BookingService/pkg/logger"
	"github.com/zanaya/ZNY-BookingService/pkg/metrics"
)

func main() {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:   "zanaya-server",
		Short: "ZANAYA booking backend (email-delivery variant)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgPath)
		},
	}
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.toml", "path to config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "zanaya-server: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting ZANAYA BookingService...")
	log.Info("Configuration loaded from %s", cfgPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем справочный каталог из выбранного источника
	catalog, err := loadCatalog(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Info("Catalog loaded: %d religions, %d kits, %d services",
		len(catalog.Religions), len(catalog.Kits), len(catalog.Services))

	// Инициализируем email-канал уведомлений
	mailAdapter := email.NewAdapter(email.Config{
		Host:       cfg.Mail.Host,
		Port:       cfg.Mail.Port,
		User:       cfg.Mail.User,
		Password:   cfg.Mail.Password,
		AdminEmail: cfg.Mail.AdminEmail,
	}, log)
	log.Info("Email configured: %v", mailAdapter.Configured())

	// Инициализируем use case и handlers
	submitUseCase := submitBookingUC.NewUseCase(mailAdapter, log)

	submitBooking := submitBookingHandler.NewHandler(submitUseCase, log)
	health := healthHandler.NewHandler()
	getCatalog := getCatalogHandler.NewHandler(catalog, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Прием бронирований
	api.HandleFunc("/submit-booking", submitBooking.Handle).Methods(http.MethodPost)

	// Health check
	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Справочный каталог
	api.HandleFunc("/religions", getCatalog.HandleReligions).Methods(http.MethodGet)
	api.HandleFunc("/religions/{religionId}/kit", getCatalog.HandleKit).Methods(http.MethodGet)
	api.HandleFunc("/services", getCatalog.HandleServices).Methods(http.MethodGet)

	// CORS: фронтенд мастера ходит с другого origin
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
	)(r)

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
		log.Info("ZANAYA Backend Server running on port %d", cfg.Server.HTTPPort)
		log.Info("API endpoint: http://localhost:%d/api", cfg.Server.HTTPPort)
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

	log.Info("Server stopped gracefully")
	return nil
}

// loadCatalog загружает каталог из файла или PostgreSQL.
// Каталог read-only, поэтому соединение с БД закрывается сразу
// после загрузки.
func loadCatalog(cfg *config.Config, log *logger.Logger) (*domain.Catalog, error) {
	if cfg.Catalog.Source == "file" {
		log.Info("Loading catalog from file %s", cfg.Catalog.File)
		return catalogfile.Load(cfg.Catalog.File)
	}

	log.Info("Loading catalog from PostgreSQL (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := catalogRepo.NewRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return repo.LoadCatalog(ctx)
}
