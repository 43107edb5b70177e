package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shenikar/disaster_response_system/docs"
	"github.com/shenikar/disaster_response_system/internal/auth"
	"github.com/shenikar/disaster_response_system/internal/config"
	v1 "github.com/shenikar/disaster_response_system/internal/handler/http/v1"
	"github.com/shenikar/disaster_response_system/internal/metrics"
	"github.com/shenikar/disaster_response_system/internal/notify"
	"github.com/shenikar/disaster_response_system/internal/repository"
	"github.com/shenikar/disaster_response_system/internal/service"
	"github.com/shenikar/disaster_response_system/internal/upstream"
	"github.com/shenikar/disaster_response_system/internal/webhook"
	"github.com/shenikar/disaster_response_system/pkg/logger"
	"github.com/shenikar/disaster_response_system/pkg/postgres"
	redisclient "github.com/shenikar/disaster_response_system/pkg/redis"
)

// @title Disaster Response System API
// @version 1.0
// @description Coordination API for distress signals, resource requests, inventory, volunteers and incident reports.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Рассылка событий: сокеты и, если настроен URL, вебхуки
	hub := notify.NewHub(log, cfg.WSSendBuffer, cfg.CORSOrigins)
	publishers := []notify.Publisher{hub}
	if cfg.WebhookURL != "" {
		publishers = append(publishers, webhook.NewRedisWebhookPublisher(redisClient))
		webhook.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
	} else {
		log.Info("WEBHOOK_URL is not set, webhook relay is disabled")
	}
	events := notify.NewFanout(publishers...)

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(dbpool)
	signalRepo := repository.NewDistressSignalRepository(dbpool)
	requestRepo := repository.NewResourceRequestRepository(dbpool)
	resourceRepo := repository.NewResourceRepository(dbpool)
	taskRepo := repository.NewVolunteerTaskRepository(dbpool)
	incidentRepo := repository.NewIncidentRepository(dbpool)
	upstreamCache := repository.NewUpstreamCache(redisClient)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Инициализация сервисов
	services := v1.Services{
		Auth:             service.NewAuthService(userRepo, tokens, log),
		DistressSignals:  service.NewDistressSignalService(signalRepo, events, log),
		ResourceRequests: service.NewResourceRequestService(requestRepo, events, log),
		Resources:        service.NewResourceService(resourceRepo, log),
		Volunteers:       service.NewVolunteerService(userRepo, taskRepo, log),
		Incidents:        service.NewIncidentService(incidentRepo, log, cfg.MaxAttachments),
		Feed: service.NewFeedService(
			upstream.NewWeatherClient(cfg.WeatherAPIURL, cfg.WeatherAPIKey, cfg.UpstreamTimeout),
			upstream.NewNewsClient(cfg.NewsAPIURL, cfg.NewsAPIKey, cfg.UpstreamTimeout),
			upstreamCache,
			cfg.UpstreamCacheTTL,
			log,
		),
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, tokens, hub, log, cfg)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload dir: %v", err)
	}

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), metrics.Middleware(), v1.CORS(cfg.CORSOrigins))

	api := router.Group("/api")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.Static("/uploads", cfg.UploadDir)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// останавливаем воркер вебхуков до закрытия Redis
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
