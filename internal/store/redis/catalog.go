package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brujula-viajes/brujula/internal/domain"
)

// DefaultDestinationTTL is the TTL for cached catalog entries (48 hours).
// The catalog file is authoritative; the cache only has to survive a
// restart window.
const DefaultDestinationTTL = 48 * time.Hour

// SaveDestination caches one destination in Redis
func (s *Store) SaveDestination(ctx context.Context, d *domain.Destination) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal destination: %w", err)
	}

	key := DestinationKey(d.ID)

	if err := s.client.Set(ctx, key, data, DefaultDestinationTTL).Err(); err != nil {
		return fmt.Errorf("failed to save destination: %w", err)
	}

	if err := s.client.SAdd(ctx, AllDestinationsKey(), d.ID).Err(); err != nil {
		return fmt.Errorf("failed to add destination to set: %w", err)
	}

	return nil
}

// GetDestination retrieves a cached destination by ID
func (s *Store) GetDestination(ctx context.Context, id string) (*domain.Destination, error) {
	data, err := s.client.Get(ctx, DestinationKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("destination not cached: %s", id)
		}
		return nil, fmt.Errorf("failed to get destination: %w", err)
	}

	var d domain.Destination
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal destination: %w", err)
	}

	return &d, nil
}

// GetAllDestinations retrieves every cached destination
func (s *Store) GetAllDestinations(ctx context.Context) ([]*domain.Destination, error) {
	ids, err := s.client.SMembers(ctx, AllDestinationsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get destination IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*domain.Destination{}, nil
	}

	destinations := make([]*domain.Destination, 0, len(ids))
	for _, id := range ids {
		d, err := s.GetDestination(ctx, id)
		if err != nil {
			// Skip entries that expired between SMembers and Get
			continue
		}
		destinations = append(destinations, d)
	}

	return destinations, nil
}

// DeleteDestination removes a destination from the cache
func (s *Store) DeleteDestination(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, DestinationKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete destination: %w", err)
	}

	if err := s.client.SRem(ctx, AllDestinationsKey(), id).Err(); err != nil {
		return fmt.Errorf("failed to remove destination from set: %w", err)
	}

	return nil
}

// SaveDestinationsMany caches multiple destinations (bulk operation)
func (s *Store) SaveDestinationsMany(ctx context.Context, destinations []*domain.Destination) error {
	pipe := s.client.Pipeline()

	for _, d := range destinations {
		data, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("failed to marshal destination %s: %w", d.ID, err)
		}

		pipe.Set(ctx, DestinationKey(d.ID), data, DefaultDestinationTTL)
		pipe.SAdd(ctx, AllDestinationsKey(), d.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save destinations: %w", err)
	}

	return nil
}
