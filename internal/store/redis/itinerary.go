package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/brujula-viajes/brujula/internal/domain"
)

// Store handles Redis operations for itineraries, the catalog cache and the
// contact inbox.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// ReadItinerary returns the full itinerary for a session, in insertion
// order. A missing slot or a malformed payload reads as an empty itinerary.
func (s *Store) ReadItinerary(ctx context.Context, session string) ([]domain.Reservation, error) {
	data, err := s.client.Get(ctx, ItineraryKey(session)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.Reservation{}, nil
		}
		return nil, fmt.Errorf("failed to read itinerary: %w", err)
	}
	return decodeItinerary(data), nil
}

// AppendReservation appends a reservation to the end of a session's
// itinerary and rewrites the whole slot. Validating the record is the
// caller's responsibility; the store persists what it is given.
func (s *Store) AppendReservation(ctx context.Context, session string, r domain.Reservation) error {
	items, err := s.ReadItinerary(ctx, session)
	if err != nil {
		return err
	}
	items = append(items, r)
	return s.writeItinerary(ctx, session, items)
}

// RemoveReservationAt removes the element at the given position. An
// out-of-range index is a no-op, not an error.
func (s *Store) RemoveReservationAt(ctx context.Context, session string, index int) error {
	items, err := s.ReadItinerary(ctx, session)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(items) {
		return nil
	}
	items = append(items[:index], items[index+1:]...)
	return s.writeItinerary(ctx, session, items)
}

// ClearItinerary empties a session's itinerary. Idempotent.
func (s *Store) ClearItinerary(ctx context.Context, session string) error {
	if err := s.client.Del(ctx, ItineraryKey(session)).Err(); err != nil {
		return fmt.Errorf("failed to clear itinerary: %w", err)
	}
	return nil
}

// writeItinerary overwrites the slot with the complete array. There is no
// delta persistence: every mutation rewrites the whole list.
func (s *Store) writeItinerary(ctx context.Context, session string, items []domain.Reservation) error {
	data, err := encodeItinerary(items)
	if err != nil {
		return fmt.Errorf("failed to marshal itinerary: %w", err)
	}
	if err := s.client.Set(ctx, ItineraryKey(session), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save itinerary: %w", err)
	}
	return nil
}
