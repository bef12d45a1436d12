package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ThomasMeMan2/skinavigator/internal/repository"
	"github.com/ThomasMeMan2/skinavigator/internal/server"
	"github.com/ThomasMeMan2/skinavigator/internal/service"
	"github.com/ThomasMeMan2/skinavigator/pkg/config"
	"github.com/ThomasMeMan2/skinavigator/pkg/domain"
	"github.com/ThomasMeMan2/skinavigator/pkg/logger"
	"github.com/ThomasMeMan2/skinavigator/pkg/metrics"
	"github.com/ThomasMeMan2/skinavigator/pkg/ratelimit"
	"github.com/ThomasMeMan2/skinavigator/pkg/telemetry"
)

func main() {
	configPath := flag.String("config", "", "путь к конфигурационному файлу")
	ingestPath := flag.String("ingest", "", "загрузить граф курорта из файла в хранилище и выйти")
	flag.Parse()

	// Загружаем конфигурацию
	var opts []config.LoaderOption
	if *configPath != "" {
		opts = append(opts, config.WithConfigPaths(*configPath))
	}

	cfg, err := config.NewLoader(opts...).Load()
	if err != nil {
		logger.Init("error")
		logger.Fatal("Failed to load config", "error", err)
	}

	// Инициализируем логгер
	logger.InitWithConfig(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})

	logger.Log.Info("Starting Route Service",
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
		"resort", cfg.Resort.Slug,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Метрики
	m := metrics.InitMetrics(cfg.Metrics.Namespace)
	m.SetServiceInfo(cfg.App.Version, cfg.App.Environment)
	prometheus.MustRegister(metrics.NewRuntimeCollector(cfg.Metrics.Namespace))

	// Телеметрия
	tp, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		Version:     cfg.App.Version,
		Environment: cfg.App.Environment,
		SampleRate:  cfg.Tracing.SampleRate,
	})
	if err != nil {
		logger.Fatal("Failed to initialize telemetry", "error", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Error("Telemetry shutdown error", "error", err)
		}
	}()

	// Хранилище графов
	repos, err := repository.NewRepositories(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize repositories", "error", err)
	}
	defer repos.Close()

	if *ingestPath != "" {
		if err := ingestGraph(ctx, repos.Graphs, cfg.Resort.Slug, *ingestPath); err != nil {
			logger.Fatal("Ingest failed", "error", err, "path", *ingestPath)
		}
		logger.Log.Info("Graph ingested", "resort", cfg.Resort.Slug, "path", *ingestPath)
		return
	}

	svc := service.NewRouteService(repos.Graphs)

	// Rate limiter
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter, err = ratelimit.New(&ratelimit.Config{
			Requests:        cfg.RateLimit.Requests,
			Window:          cfg.RateLimit.Window,
			Backend:         cfg.RateLimit.Backend,
			CleanupInterval: cfg.RateLimit.CleanupInterval,
			RedisAddr:       cfg.RateLimit.RedisAddr,
		})
		if err != nil {
			logger.Fatal("Failed to initialize rate limiter", "error", err)
		}
		defer func() {
			if err := limiter.Close(); err != nil {
				logger.Error("Rate limiter close error", "error", err)
			}
		}()
	}

	// Отдельный порт для метрик, если он отличается от основного
	if cfg.Metrics.Enabled && cfg.Metrics.Port > 0 && cfg.Metrics.Port != cfg.HTTP.Port {
		go func() {
			logger.Log.Info("Metrics server listening", "port", cfg.Metrics.Port)
			if err := metrics.StartMetricsServer(cfg.Metrics.Port); err != nil {
				logger.Error("Metrics server failed", "error", err)
			}
		}()
	}

	handler := server.NewHandler(svc, cfg)
	srv := server.New(&cfg.HTTP, server.NewRouter(handler, limiter))

	if err := srv.Run(); err != nil {
		logger.Fatal("Server failed", "error", err)
	}
}

// ingestGraph читает JSON-документ графа и сохраняет его в хранилище
func ingestGraph(ctx context.Context, repo repository.GraphRepository, slug, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read graph file: %w", err)
	}

	doc, err := domain.DecodeDocument(data)
	if err != nil {
		return fmt.Errorf("failed to decode graph document: %w", err)
	}

	return repo.Save(ctx, &repository.ResortGraph{
		Slug:      slug,
		Name:      slug,
		Document:  data,
		NodeCount: len(doc.Nodes),
		EdgeCount: len(doc.Edges),
	})
}
