package progress

import (
	"sync"
	"time"

	"modeldeck/backend/internal/model"
)

// Store is a thread-safe keyed registry of pull progress records. The
// orchestrator's background task is the only writer for a given key;
// any number of pollers may read concurrently.
type Store interface {
	// Set inserts or overwrites the record for a model. Overwriting an
	// existing record effectively restarts tracking for that model.
	Set(name string, rec model.PullProgress)
	// Get returns a copy of the record for a model, if one exists.
	Get(name string) (model.PullProgress, bool)
	// Mutate applies fn to the record under the store lock. It returns
	// false when no record exists for the key.
	Mutate(name string, fn func(*model.PullProgress)) bool
	// Close stops background eviction.
	Close()
}

// memoryStore guards the whole map with one RWMutex. The number of
// simultaneous downloads is bounded by user action, so contention on a
// single lock is not a concern here.
type memoryStore struct {
	mu      sync.RWMutex
	records map[string]model.PullProgress
	stop    chan struct{}
	once    sync.Once
}

// NewMemoryStore creates an in-memory store. Terminal records whose last
// update is older than ttl are evicted by a janitor goroutine; records of
// in-flight downloads are never evicted. A ttl of zero disables eviction.
func NewMemoryStore(ttl time.Duration) Store {
	s := &memoryStore{
		records: make(map[string]model.PullProgress),
		stop:    make(chan struct{}),
	}
	if ttl > 0 {
		go s.janitor(ttl)
	}
	return s
}

func (s *memoryStore) Set(name string, rec model.PullProgress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[name] = rec
}

func (s *memoryStore) Get(name string) (model.PullProgress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[name]
	return rec, ok
}

func (s *memoryStore) Mutate(name string, fn func(*model.PullProgress)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[name]
	if !ok {
		return false
	}
	fn(&rec)
	s.records[name] = rec
	return true
}

func (s *memoryStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *memoryStore) janitor(ttl time.Duration) {
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictExpired(ttl)
		}
	}
}

func (s *memoryStore) evictExpired(ttl time.Duration) {
	cutoff := time.Now().Add(-ttl).Unix()
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, rec := range s.records {
		if rec.Done && rec.LastUpdate > 0 && rec.LastUpdate < cutoff {
			delete(s.records, name)
		}
	}
}
