package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/SabeeirSharrma/allthetorr/internal/model"
)

// SortDirection selects the ordering of a size sort
type SortDirection int

const (
	// Ascending sorts smallest first
	Ascending SortDirection = iota

	// Descending sorts largest first
	Descending
)

// String returns the display name for a sort direction
func (d SortDirection) String() string {
	if d == Descending {
		return "largest"
	}
	return "smallest"
}

// Store holds the active catalog snapshot. Install replaces the snapshot
// atomically under the write lock while queries run under the read lock, so
// readers see either the fully-old or fully-new catalog, never a mix. The
// store starts empty; queries on an empty store return empty results.
type Store struct {
	mu     sync.RWMutex
	active model.Catalog
}

// NewStore creates an empty catalog store
func NewStore() *Store {
	return &Store{}
}

// Install atomically replaces the active catalog. Whichever install lands
// last wins, regardless of which fetch was requested first.
func (s *Store) Install(c model.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = c
}

// Len returns the number of records in the active catalog
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.active)
}

// All returns a copy of the active catalog in fetch order
func (s *Store) All() model.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(model.Catalog, len(s.active))
	copy(out, s.active)
	return out
}

// Search returns the records whose title contains the query, matched
// case-insensitively. An empty query returns the full catalog in order.
func (s *Store) Search(query string) model.Catalog {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.All()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var results model.Catalog
	for _, record := range s.active {
		if strings.Contains(strings.ToLower(record.Title), q) {
			results = append(results, record)
		}
	}
	return results
}

// SortBySize returns a copy of the active catalog stable-sorted by normalized
// size. Stability matters: records with unknown sizes all normalize to zero
// and must keep their fetch order relative to each other.
func (s *Store) SortBySize(direction SortDirection) model.Catalog {
	records := s.All()

	sort.SliceStable(records, func(i, j int) bool {
		if direction == Descending {
			return records[i].SizeMB() > records[j].SizeMB()
		}
		return records[i].SizeMB() < records[j].SizeMB()
	})
	return records
}

// Lookup returns the first record with the given id. Duplicate ids resolve to
// the first match in fetch order.
func (s *Store) Lookup(id string) (model.UploadRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.active {
		if record.ID == id {
			return record, true
		}
	}
	return model.UploadRecord{}, false
}
