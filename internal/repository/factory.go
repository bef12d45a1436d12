package repository

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/ThomasMeMan2/skinavigator/pkg/cache"
	"github.com/ThomasMeMan2/skinavigator/pkg/config"
	"github.com/ThomasMeMan2/skinavigator/pkg/database"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SourceType источник данных графа
type SourceType string

const (
	SourceFile     SourceType = "file"
	SourcePostgres SourceType = "postgres"
)

// Repositories контейнер репозиториев
type Repositories struct {
	Graphs GraphRepository
	db     *database.PostgresDB // Для закрытия при shutdown
}

// Close закрывает соединения
func (r *Repositories) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

// NewRepositories создаёт репозитории на основе конфигурации
func NewRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch SourceType(cfg.Resort.Source) {
	case SourceFile, "":
		return &Repositories{
			Graphs: NewFileRepository(cfg.Resort.FilePath, cfg.Resort.Slug),
		}, nil

	case SourcePostgres:
		return newPostgresRepositories(ctx, cfg)

	default:
		return nil, fmt.Errorf("unsupported resort source: %s", cfg.Resort.Source)
	}
}

func newPostgresRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := database.RunMigrations(ctx, db.Pool(), &cfg.Database, migrations, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	graphCache, err := newGraphCache(&cfg.Cache)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Repositories{
		Graphs: NewPostgresGraphRepository(db, graphCache),
		db:     db,
	}, nil
}

func newGraphCache(cfg *config.CacheConfig) (*cache.GraphCache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	base, err := cache.New(cache.FromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	ttl := cfg.DefaultTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return cache.NewGraphCache(base, ttl), nil
}
