package scheduler

import (
	"context"

	"github.com/brujula-viajes/brujula/internal/index"
	"github.com/brujula-viajes/brujula/internal/logger"
	redisstore "github.com/brujula-viajes/brujula/internal/store/redis"
)

// CatalogSyncer warms the memory index from the Redis catalog cache on startup
type CatalogSyncer struct {
	store  *redisstore.Store
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewCatalogSyncer creates a new catalog syncer
func NewCatalogSyncer(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
) *CatalogSyncer {
	return &CatalogSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync loads destinations from Redis and updates the memory index.
// Serves stale data until the first catalog reload completes.
func (cs *CatalogSyncer) Sync(ctx context.Context) error {
	cs.logger.Info("syncing destinations from redis to memory")

	destinations, err := cs.store.GetAllDestinations(ctx)
	if err != nil {
		return err
	}

	if len(destinations) == 0 {
		cs.logger.Info("no destinations found in redis")
		return nil
	}

	cs.index.UpdateDestinations(destinations)

	cs.logger.Info("synced destinations from redis",
		logger.Int("count", len(destinations)))

	return nil
}
