package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/storefront/catalog-service/app/account"
	"github.com/storefront/catalog-service/app/cache"
	"github.com/storefront/catalog-service/app/catalog"
	"github.com/storefront/catalog-service/app/config"
	"github.com/storefront/catalog-service/app/database"
	"github.com/storefront/catalog-service/app/fakestore"
	"github.com/storefront/catalog-service/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// resources holds the connections opened for a command.
type resources struct {
	products catalog.ProductProvider
	snapshot *cache.SnapshotCache
	mirror   *models.ProductsRepository
	rdb      *redis.Client
	db       *gorm.DB
}

// openResources builds the product provider selected by catalog.source, wrapped in the
// snapshot cache when redis is configured.
func openResources(ctx context.Context, cfg *config.Config, log *zap.Logger) (*resources, error) {
	res := &resources{}

	switch cfg.Catalog.Source {
	case config.SourceDatabase:
		db, err := database.OpenPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		res.db = db
		res.mirror = models.NewProductsRepository(db)
		res.products = res.mirror
	default:
		res.products = fakestore.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	}

	if cfg.Cache.Enabled() {
		rdb, err := database.NewRedis(ctx, cfg.Cache)
		if err != nil {
			res.Close(log)
			return nil, err
		}
		res.rdb = rdb
		res.snapshot = cache.NewSnapshotCache(rdb, res.products, cfg.Cache.TTL, log)
		res.products = res.snapshot
	}

	log.Info("catalog source ready",
		zap.String("source", cfg.Catalog.Source),
		zap.Bool("cache", cfg.Cache.Enabled()),
	)
	return res, nil
}

func (r *resources) credentialStore(cfg *config.Config) (account.CredentialStore, error) {
	switch cfg.Accounts.Store {
	case config.StoreRedis:
		if r.rdb == nil {
			return nil, fmt.Errorf("accounts.store=%s needs a redis connection", config.StoreRedis)
		}
		return account.NewRedisStore(r.rdb), nil
	default:
		return account.NewMemoryStore(), nil
	}
}

func (r *resources) Close(log *zap.Logger) {
	if r.rdb != nil {
		if err := r.rdb.Close(); err != nil {
			log.Warn("failed to close redis", zap.Error(err))
		}
	}
	if r.db != nil {
		if err := database.Close(r.db); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}
}
