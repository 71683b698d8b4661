// Package cache keeps the fetched product snapshot in redis so repeated listings do not go
// back to the upstream store API.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/storefront/catalog-service/app/metrics"
	"github.com/storefront/catalog-service/models"
	"go.uber.org/zap"
)

const SnapshotKey = "storefront:catalog:snapshot"

// ProductSource is the provider the cache sits in front of.
type ProductSource interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

// SnapshotCache stores the whole product list under a single key with a TTL. Redis failures
// are logged and the wrapped source is used instead; they never reach the caller.
type SnapshotCache struct {
	rdb    redis.Cmdable
	source ProductSource
	ttl    time.Duration
	log    *zap.Logger
}

func NewSnapshotCache(rdb redis.Cmdable, source ProductSource, ttl time.Duration, log *zap.Logger) *SnapshotCache {
	return &SnapshotCache{
		rdb:    rdb,
		source: source,
		ttl:    ttl,
		log:    log,
	}
}

func (c *SnapshotCache) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	if products, ok := c.lookup(ctx); ok {
		return products, nil
	}

	products, err := c.source.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, products)
	return products, nil
}

// GetByID answers from the cached snapshot when there is one, otherwise asks the source.
func (c *SnapshotCache) GetByID(ctx context.Context, id int) (*models.Product, error) {
	products, ok := c.lookup(ctx)
	if !ok {
		return c.source.GetByID(ctx, id)
	}
	for _, p := range products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, models.ErrProductNotFound
}

// Invalidate drops the cached snapshot.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, SnapshotKey).Err()
}

func (c *SnapshotCache) lookup(ctx context.Context) ([]models.Product, bool) {
	raw, err := c.rdb.Get(ctx, SnapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.SnapshotCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return nil, false
	}
	if err != nil {
		metrics.SnapshotCacheLookups.WithLabelValues(metrics.CacheError).Inc()
		c.log.Warn("snapshot cache read failed", zap.Error(err))
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		metrics.SnapshotCacheLookups.WithLabelValues(metrics.CacheError).Inc()
		c.log.Warn("snapshot cache entry is corrupt", zap.Error(err))
		return nil, false
	}

	metrics.SnapshotCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	return products, true
}

func (c *SnapshotCache) store(ctx context.Context, products []models.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		c.log.Warn("snapshot cache encode failed", zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, SnapshotKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn("snapshot cache write failed", zap.Error(err))
	}
}
