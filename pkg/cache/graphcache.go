package cache

import (
	"context"
	"errors"
	"time"

	"github.com/ThomasMeMan2/skinavigator/pkg/logger"
)

// GraphCache кэширует сырые JSON-документы графов курортов по slug.
// Кэшируются только входные документы; решённые маршруты не кэшируются
// никогда, каждый запрос считается заново.
type GraphCache struct {
	cache Cache
	ttl   time.Duration
}

// NewGraphCache создаёт кэш графов поверх базового кэша
func NewGraphCache(base Cache, ttl time.Duration) *GraphCache {
	return &GraphCache{cache: base, ttl: ttl}
}

// Get возвращает документ графа из кэша, nil при промахе
func (g *GraphCache) Get(ctx context.Context, slug string) []byte {
	data, err := g.cache.Get(ctx, BuildGraphKey(slug))
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logger.Warn("graph cache get failed", "slug", slug, "error", err)
		}
		return nil
	}
	return data
}

// Set сохраняет документ графа в кэш, промахи не критичны
func (g *GraphCache) Set(ctx context.Context, slug string, document []byte) {
	if err := g.cache.Set(ctx, BuildGraphKey(slug), document, g.ttl); err != nil {
		logger.Warn("graph cache set failed", "slug", slug, "error", err)
	}
}

// Invalidate удаляет документ графа из кэша
func (g *GraphCache) Invalidate(ctx context.Context, slug string) {
	if err := g.cache.Delete(ctx, BuildGraphKey(slug)); err != nil {
		logger.Warn("graph cache invalidate failed", "slug", slug, "error", err)
	}
}
