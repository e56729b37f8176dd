package floorstate

import (
	"fmt"
	"sync"

	"playhall/internal/domain/pricing"
	"playhall/internal/domain/revenue"
	"playhall/internal/domain/station"
	"playhall/internal/pkg/config"
	"playhall/internal/pkg/errs"
)

// Floor is the whole venue state: the fixed station registry plus the
// revenue aggregate. It is only ever touched under the Store's lock.
type Floor struct {
	stations []*station.Station
	index    map[string]*station.Station
	revenue  *revenue.State
}

func NewFloor(stations []*station.Station, rev *revenue.State) *Floor {
	index := make(map[string]*station.Station, len(stations))
	for _, st := range stations {
		index[st.ID()] = st
	}
	return &Floor{stations: stations, index: index, revenue: rev}
}

func (f *Floor) Stations() []*station.Station {
	out := make([]*station.Station, len(f.stations))
	copy(out, f.stations)
	return out
}

func (f *Floor) Station(id string) (*station.Station, error) {
	st, ok := f.index[id]
	if !ok {
		return nil, errs.ErrStationNotFound
	}
	return st, nil
}

func (f *Floor) Revenue() *revenue.State {
	return f.revenue
}

func (f *Floor) OccupiedCount() int {
	n := 0
	for _, st := range f.stations {
		if st.IsOccupied() {
			n++
		}
	}
	return n
}

// Seed builds the fixed inventory from the floor config and catalog. Station
// IDs are deterministic, so seeding is idempotent: stations already present
// (for example restored from a snapshot, sessions included) are kept as-is
// and only the missing ones are created.
func (f *Floor) Seed(cfg config.FloorConfig, catalog pricing.Catalog) error {
	plan := []struct {
		category pricing.Category
		count    int
		name     string
	}{
		{pricing.CategoryTable, cfg.Tables, "Billiard Table"},
		{pricing.CategoryConsole, cfg.Consoles, "Console"},
		{pricing.CategoryWorkstation, cfg.Workstations, "PC"},
		{pricing.CategoryDining, cfg.DiningSpots, "Dining Table"},
	}

	for _, p := range plan {
		section, err := catalog.Section(p.category)
		if err != nil {
			return err
		}
		for i := 1; i <= p.count; i++ {
			id := fmt.Sprintf("%s-%d", p.category, i)
			if _, ok := f.index[id]; ok {
				continue
			}
			st, err := station.New(id, fmt.Sprintf("%s %d", p.name, i), p.category, section)
			if err != nil {
				return err
			}
			f.stations = append(f.stations, st)
			f.index[id] = st
		}
	}
	return nil
}

// Store serializes all access to the floor behind one mutex: the Go
// rendering of the original's single logical actor, since HTTP handlers and
// the snapshot tick run concurrently.
type Store struct {
	mu    sync.Mutex
	floor *Floor
	dirty bool
}

func NewStore() *Store {
	return &Store{floor: NewFloor(nil, revenue.NewState())}
}

// Mutate runs fn with exclusive access and marks the floor dirty when it
// succeeds, so the next snapshot tick persists the change.
func (s *Store) Mutate(fn func(*Floor) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.floor); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// Read runs fn with exclusive access without marking the floor dirty. fn
// must not mutate domain state.
func (s *Store) Read(fn func(*Floor) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.floor)
}

// Replace swaps in a restored floor wholesale. Used once at startup.
func (s *Store) Replace(floor *Floor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floor = floor
	s.dirty = true
}

// ConsumeDirty reports whether a snapshot is due and resets the flag. A
// snapshot is due after any mutation, and also while stations are occupied
// so the persisted save timestamp stays fresh for staleness detection.
func (s *Store) ConsumeDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	due := s.dirty || s.floor.OccupiedCount() > 0
	s.dirty = false
	return due
}
