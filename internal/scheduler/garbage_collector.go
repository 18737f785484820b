package scheduler

import (
	"context"
	"time"

	"github.com/brujula-viajes/brujula/internal/index"
	"github.com/brujula-viajes/brujula/internal/logger"
	redisstore "github.com/brujula-viajes/brujula/internal/store/redis"
)

const (
	// DefaultGCThreshold is the duration after which disabled destinations are deleted
	DefaultGCThreshold = 30 * 24 * time.Hour // 30 days
)

// GarbageCollector handles cleanup of destinations that stayed disabled past the threshold
type GarbageCollector struct {
	store     *redisstore.Store
	index     *index.MemoryIndex
	logger    logger.Logger
	interval  time.Duration
	threshold time.Duration
	stopCh    chan struct{}
}

// NewGarbageCollector creates a new garbage collector
func NewGarbageCollector(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	threshold time.Duration,
) *GarbageCollector {
	if threshold == 0 {
		threshold = DefaultGCThreshold
	}

	return &GarbageCollector{
		store:     store,
		index:     idx,
		logger:    log,
		interval:  interval,
		threshold: threshold,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic garbage collection process
func (gc *GarbageCollector) Start(ctx context.Context) error {
	// Run immediately on start
	if err := gc.Collect(ctx); err != nil {
		gc.logger.Warn("initial garbage collection failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := gc.Collect(ctx); err != nil {
					gc.logger.Error("garbage collection failed",
						logger.Error(err))
				}
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the garbage collector
func (gc *GarbageCollector) Stop() {
	close(gc.stopCh)
}

// Collect removes destinations that have been disabled for longer than the threshold
func (gc *GarbageCollector) Collect(ctx context.Context) error {
	gc.logger.Debug("running garbage collection for disabled destinations")

	now := time.Now()
	deleted := 0

	for _, d := range gc.index.GetAllDestinations() {
		if !d.Disabled {
			continue
		}
		if d.UpdatedAt.IsZero() {
			continue
		}

		disabledFor := now.Sub(d.UpdatedAt)
		if disabledFor < gc.threshold {
			continue
		}

		gc.index.DeleteDestination(d.ID)

		// Delete from Redis store (best effort)
		if gc.store != nil {
			if err := gc.store.DeleteDestination(ctx, d.ID); err != nil {
				gc.logger.Warn("failed to delete destination from redis",
					logger.String("destination_id", d.ID),
					logger.Error(err))
			}
		}

		gc.logger.Info("garbage collected disabled destination",
			logger.String("destination_id", d.ID),
			logger.String("name", d.Name),
			logger.String("disabled_for", disabledFor.String()))

		deleted++
	}

	if deleted > 0 {
		gc.logger.Info("garbage collection completed",
			logger.Int("deleted", deleted))
	}

	return nil
}
