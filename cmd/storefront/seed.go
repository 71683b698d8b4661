package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/storefront/catalog-service/app/cache"
	"github.com/storefront/catalog-service/app/database"
	"github.com/storefront/catalog-service/app/fakestore"
	"github.com/storefront/catalog-service/models"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Copy the upstream catalog into the postgres mirror",
	Long: `Fetches every product from the upstream store API and replaces the contents of
the postgres mirror with them in one transaction. The redis snapshot, when
configured, is dropped so the next listing reads the new mirror.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	products, err := fakestore.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout).GetAllProducts(ctx)
	if err != nil {
		return fmt.Errorf("fetch upstream catalog: %w", err)
	}

	db, err := database.OpenPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}
	if err := models.NewProductsRepository(db).ReplaceAll(ctx, products); err != nil {
		return err
	}

	if cfg.Cache.Enabled() {
		rdb, err := database.NewRedis(ctx, cfg.Cache)
		if err != nil {
			log.Warn("snapshot not invalidated", zap.Error(err))
		} else {
			defer func() { _ = rdb.Close() }()
			if err := cache.NewSnapshotCache(rdb, nil, cfg.Cache.TTL, log).Invalidate(ctx); err != nil {
				log.Warn("snapshot not invalidated", zap.Error(err))
			}
		}
	}

	log.Info("catalog mirror seeded", zap.Int("products", len(products)))
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products\n", len(products))
	return nil
}
