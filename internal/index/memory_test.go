package index

import (
	"sync"
	"testing"

	"github.com/brujula-viajes/brujula/internal/domain"
)

func TestNewMemoryIndex(t *testing.T) {
	idx := NewMemoryIndex()
	if idx == nil {
		t.Fatal("NewMemoryIndex() returned nil")
	}
	if got := idx.GetAllDestinations(); len(got) != 0 {
		t.Errorf("NewMemoryIndex() should start empty, got %v", len(got))
	}
	if !idx.GetLastReload().IsZero() {
		t.Error("NewMemoryIndex() should start with zero last reload")
	}
}

func TestUpdateDestinations(t *testing.T) {
	idx := NewMemoryIndex()

	destinations := []*domain.Destination{
		{ID: "1", Name: "Bariloche"},
		{ID: "2", Name: "Cancún"},
	}

	idx.UpdateDestinations(destinations)

	if got := idx.Count(); got != 2 {
		t.Errorf("UpdateDestinations() stored %v destinations, want 2", got)
	}
	if idx.GetLastReload().IsZero() {
		t.Error("UpdateDestinations() should set the last reload timestamp")
	}
}

func TestUpdateDestinationsOverwrites(t *testing.T) {
	idx := NewMemoryIndex()

	idx.UpdateDestinations([]*domain.Destination{
		{ID: "1", Name: "Bariloche"},
	})
	idx.UpdateDestinations([]*domain.Destination{
		{ID: "2", Name: "Cancún"},
		{ID: "3", Name: "Ushuaia"},
	})

	if got := idx.Count(); got != 2 {
		t.Errorf("UpdateDestinations() should overwrite, got %v destinations want 2", got)
	}
	if _, ok := idx.GetDestination("1"); ok {
		t.Error("UpdateDestinations() kept a destination from the previous load")
	}
}

func TestGetDestination(t *testing.T) {
	idx := NewMemoryIndex()
	idx.UpdateDestinations([]*domain.Destination{
		{ID: "1", Name: "Bariloche", PricePerDay: 120},
	})

	d, ok := idx.GetDestination("1")
	if !ok {
		t.Fatal("GetDestination() did not find an indexed destination")
	}
	if d.Name != "Bariloche" {
		t.Errorf("GetDestination() Name = %v, want Bariloche", d.Name)
	}

	if _, ok := idx.GetDestination("nope"); ok {
		t.Error("GetDestination() found a destination that was never added")
	}
}

func TestDeleteDestination(t *testing.T) {
	idx := NewMemoryIndex()
	idx.UpdateDestinations([]*domain.Destination{
		{ID: "1", Name: "Bariloche"},
		{ID: "2", Name: "Cancún"},
	})

	idx.DeleteDestination("1")

	if got := idx.Count(); got != 1 {
		t.Errorf("DeleteDestination() left %v destinations, want 1", got)
	}
	if _, ok := idx.GetDestination("1"); ok {
		t.Error("DeleteDestination() did not remove the destination")
	}
}

func TestActiveCount(t *testing.T) {
	idx := NewMemoryIndex()
	idx.UpdateDestinations([]*domain.Destination{
		{ID: "1", Name: "Bariloche"},
		{ID: "2", Name: "Cancún", Disabled: true},
		{ID: "3", Name: "Ushuaia"},
	})

	if got := idx.ActiveCount(); got != 2 {
		t.Errorf("ActiveCount() = %v, want 2", got)
	}
	if got := idx.Count(); got != 3 {
		t.Errorf("Count() = %v, want 3", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	idx := NewMemoryIndex()
	idx.UpdateDestinations([]*domain.Destination{
		{ID: "1", Name: "Bariloche"},
		{ID: "2", Name: "Cancún"},
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = idx.GetAllDestinations()
		}()
		go func() {
			defer wg.Done()
			idx.AddDestination(&domain.Destination{ID: "3", Name: "Ushuaia"})
		}()
	}
	wg.Wait()

	if got := idx.Count(); got != 3 {
		t.Errorf("Count() after concurrent access = %v, want 3", got)
	}
}
