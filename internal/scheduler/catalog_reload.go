package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/brujula-viajes/brujula/internal/domain"
	"github.com/brujula-viajes/brujula/internal/index"
	"github.com/brujula-viajes/brujula/internal/logger"
	"github.com/brujula-viajes/brujula/internal/sources/catalog"
	redisstore "github.com/brujula-viajes/brujula/internal/store/redis"
)

// CatalogReloader handles periodic reloading of the destination catalog file
type CatalogReloader struct {
	loader        *catalog.Loader
	mapper        *catalog.Mapper
	store         *redisstore.Store
	index         *index.MemoryIndex
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewCatalogReloader creates a new catalog reloader
func NewCatalogReloader(
	catalogFile string,
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogReloader {
	return &CatalogReloader{
		loader:        catalog.NewLoader(catalogFile),
		mapper:        catalog.NewMapper(),
		store:         store,
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic reload process
func (cr *CatalogReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial reload failed: %w", err)
	}

	// Start periodic reload
	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (cr *CatalogReloader) Stop() {
	close(cr.stopCh)
}

// Reload loads the catalog file and updates store + index.
// Destinations missing from the new file are kept but marked Disabled,
// so the garbage collector can delete them later.
func (cr *CatalogReloader) Reload(ctx context.Context) error {
	cr.logger.Info("reloading destination catalog")

	doc, err := cr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	newDestinations, err := cr.mapper.MapDestinations(doc)
	if err != nil {
		return fmt.Errorf("failed to map destinations: %w", err)
	}

	cr.logger.Info("loaded destinations from catalog",
		logger.Int("count", len(newDestinations)))

	// Build map of new destination IDs for quick lookup
	newIDs := make(map[string]bool, len(newDestinations))
	for _, d := range newDestinations {
		newIDs[d.ID] = true
	}

	// Find destinations that disappeared from the catalog file
	var disabled []*domain.Destination
	for _, existing := range cr.index.GetAllDestinations() {
		if !newIDs[existing.ID] {
			existing.Disabled = true
			existing.UpdatedAt = time.Now()
			disabled = append(disabled, existing)
		}
	}

	if len(disabled) > 0 {
		cr.logger.Info("marking removed destinations as disabled",
			logger.Int("count", len(disabled)))
	}

	newDestinations = append(newDestinations, disabled...)

	// Update memory index
	cr.index.UpdateDestinations(newDestinations)

	// Update Redis store (best effort)
	if cr.store != nil {
		if err := cr.store.SaveDestinationsMany(ctx, newDestinations); err != nil {
			cr.logger.Warn("failed to save destinations to redis",
				logger.Error(err))
			// Don't fail - memory index is the primary source
		} else {
			cr.logger.Info("destinations saved to redis")
		}
	}

	return nil
}
