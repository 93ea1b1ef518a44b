package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	redis_cache "github.com/quantity-digital/qd-post/internal/cache/redis"
	"github.com/quantity-digital/qd-post/internal/config"
	delivery_http "github.com/quantity-digital/qd-post/internal/delivery/http"
	post_http "github.com/quantity-digital/qd-post/internal/delivery/http/post"
	metrics_server "github.com/quantity-digital/qd-post/internal/delivery/metrics"
	"github.com/quantity-digital/qd-post/internal/logger"
	prometheus_metrics "github.com/quantity-digital/qd-post/internal/metrics/prometheus"
	field_postgres "github.com/quantity-digital/qd-post/internal/repository/field/postgres"
	post_postgres "github.com/quantity-digital/qd-post/internal/repository/post/postgres"
	search_postgres "github.com/quantity-digital/qd-post/internal/search/postgres"
	gateway_service "github.com/quantity-digital/qd-post/internal/service/gateway"
	"github.com/quantity-digital/qd-post/internal/storage"
	fs_storage "github.com/quantity-digital/qd-post/internal/storage/fs"
	memory_storage "github.com/quantity-digital/qd-post/internal/storage/memory"
	s3_storage "github.com/quantity-digital/qd-post/internal/storage/s3"
	"github.com/quantity-digital/qd-post/internal/upload"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if err := runMigrations(dsn, cfg.Database.MigrationsPath); err != nil {
		log.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	postCache := redis_cache.NewPostCache(redisClient, log,
		time.Duration(cfg.Cache.PostTTLSeconds)*time.Second)

	store, err := newStorageBackend(cfg.Storage)
	if err != nil {
		log.Error("Failed to create storage backend",
			slog.String("backend", cfg.Storage.Backend),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	postRepo := post_postgres.NewPostRepository(pool, log)
	fieldRepo := field_postgres.NewFieldRepository(pool, log)
	searcher := search_postgres.NewSearcher(pool, log)
	uploader := upload.NewFileUploader(store, postRepo, fieldRepo,
		cfg.Storage.PublicURL, cfg.Upload.MaxFileSize, log)

	originalGateway := gateway_service.NewGatewayService(postRepo, fieldRepo, searcher, uploader, log, metrics)
	gateway := gateway_service.NewGatewayCacheDecorator(originalGateway, postCache, log, metrics)

	postAPI := post_http.NewPostHTTPService(gateway, cfg.Upload.MaxFileSize, log)
	httpServer := delivery_http.NewServer(postAPI.Routes(), cfg.HTTPServer.Address, cfg.HTTPServer.Port, log, metrics)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}

func runMigrations(dsn, path string) error {
	m, err := migrate.New("file://"+path, dsn)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func newStorageBackend(cfg config.Storage) (storage.Backend, error) {
	switch cfg.Backend {
	case "memory":
		return memory_storage.NewMemoryBackend(), nil
	case "fs":
		return fs_storage.NewFSBackend(fs_storage.Config{BaseDir: cfg.FS.BaseDir})
	case "s3":
		return s3_storage.NewS3Backend(s3_storage.Config{
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			Endpoint:        cfg.S3.Endpoint,
			UsePathStyle:    cfg.S3.UsePathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
