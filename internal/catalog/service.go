package catalog

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/SabeeirSharrma/allthetorr/internal/config"
	"github.com/SabeeirSharrma/allthetorr/internal/model"
)

// Service ties the configured database URL, the fetcher, and the catalog
// store together for the front-ends. Blocking surfaces call Refresh directly;
// surfaces with a live render loop use RefreshAsync and receive one completion
// callback per request.
type Service struct {
	cfgStore *config.Store
	fetcher  *Fetcher
	store    *Store

	mu        sync.RWMutex
	url       string
	state     model.FetchState
	lastError string
	onUpdate  func(model.FetchState) // callback for UI updates
}

// NewService creates a service using the URL persisted in the config store
func NewService(cfgStore *config.Store, fetcher *Fetcher) *Service {
	cfg := cfgStore.Load()
	return &Service{
		cfgStore: cfgStore,
		fetcher:  fetcher,
		store:    NewStore(),
		url:      cfg.CatalogURL,
		state:    model.FetchStateIdle,
	}
}

// SetUpdateCallback sets the callback invoked on fetch state transitions
func (s *Service) SetUpdateCallback(callback func(model.FetchState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Store returns the catalog store backing the query operations
func (s *Service) Store() *Store {
	return s.store
}

// URL returns the currently configured database URL
func (s *Service) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.url
}

// State returns the current fetch state
func (s *Service) State() model.FetchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// LastError returns the detail of the most recent failed refresh, or ""
func (s *Service) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// SetURL switches to a new database URL and persists it. A persistence
// failure is returned so the caller can warn, but the new URL is applied
// in memory regardless.
func (s *Service) SetURL(url string) error {
	s.mu.Lock()
	s.url = url
	s.mu.Unlock()

	if err := s.cfgStore.Save(config.Config{CatalogURL: url}); err != nil {
		log.Printf("Failed to persist config to %s: %v", s.cfgStore.Path(), err)
		return err
	}
	return nil
}

// Refresh fetches the configured URL and, on success, installs the result as
// the active catalog. On failure the previously installed catalog stays in
// place and remains queryable. Exactly one attempt per call.
func (s *Service) Refresh(ctx context.Context) (model.Catalog, error) {
	fetchID := "fetch-" + uuid.New().String()
	url := s.URL()

	s.setState(model.FetchStateFetching, "")
	log.Printf("Refresh %s started: url=%s", fetchID, url)

	records, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		log.Printf("Refresh %s failed: %v", fetchID, err)
		s.setState(model.FetchStateFailed, err.Error())
		return nil, err
	}

	// Install before signalling completion so the callback already observes
	// the new snapshot. Concurrent refreshes are allowed; the later install
	// wins.
	s.store.Install(records)
	s.setState(model.FetchStateLoaded, "")
	log.Printf("Refresh %s completed: %d records", fetchID, len(records))
	return records, nil
}

// RefreshAsync runs Refresh on a worker goroutine so a rendering loop keeps
// responding while the network call is outstanding. The done callback is the
// single result handoff and is invoked exactly once, with either the
// installed catalog or the failure.
func (s *Service) RefreshAsync(done func(model.Catalog, error)) {
	go func() {
		records, err := s.Refresh(context.Background())
		if done != nil {
			done(records, err)
		}
	}()
}

// setState records a state transition and notifies the update callback
func (s *Service) setState(state model.FetchState, detail string) {
	s.mu.Lock()
	s.state = state
	s.lastError = detail
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(state)
	}
}
