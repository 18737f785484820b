package index

import (
	"sync"
	"time"

	"github.com/brujula-viajes/brujula/internal/domain"
)

// MemoryIndex provides in-memory storage and lookup for catalog destinations.
// It is the authoritative in-session view of the catalog; Redis only acts as
// a warm-up cache across restarts.
type MemoryIndex struct {
	mu           sync.RWMutex
	destinations map[string]*domain.Destination // ID -> Destination
	lastReload   time.Time                      // Timestamp of last catalog reload
}

// NewMemoryIndex creates a new memory index
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		destinations: make(map[string]*domain.Destination),
	}
}

// UpdateDestinations replaces all destinations in the index
func (idx *MemoryIndex) UpdateDestinations(destinations []*domain.Destination) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	// Clear and rebuild
	idx.destinations = make(map[string]*domain.Destination, len(destinations))
	for _, d := range destinations {
		idx.destinations[d.ID] = d
	}
	idx.lastReload = time.Now()
}

// GetDestination retrieves a destination by ID
func (idx *MemoryIndex) GetDestination(id string) (*domain.Destination, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	d, ok := idx.destinations[id]
	return d, ok
}

// GetAllDestinations returns all destinations, disabled ones included
func (idx *MemoryIndex) GetAllDestinations() []*domain.Destination {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	destinations := make([]*domain.Destination, 0, len(idx.destinations))
	for _, d := range idx.destinations {
		destinations = append(destinations, d)
	}
	return destinations
}

// AddDestination adds or updates a single destination
func (idx *MemoryIndex) AddDestination(d *domain.Destination) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.destinations[d.ID] = d
}

// DeleteDestination removes a destination from the index
func (idx *MemoryIndex) DeleteDestination(id string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	delete(idx.destinations, id)
}

// Count returns the number of destinations in the index
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.destinations)
}

// ActiveCount returns the number of destinations that are not disabled
func (idx *MemoryIndex) ActiveCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	n := 0
	for _, d := range idx.destinations {
		if !d.Disabled {
			n++
		}
	}
	return n
}

// GetLastReload returns the timestamp of the last catalog reload
func (idx *MemoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
