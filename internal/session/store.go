package session

import (
	"container/list"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNoSession = errors.New("no session for user")

// GaugeRecorder receives the number of live sessions.
type GaugeRecorder interface {
	RecordGauge(name string, value float64, tags map[string]string)
}

type entry struct {
	userID    uuid.UUID
	state     State
	expiresAt time.Time
}

// Store keeps one State per user in memory with LRU eviction and a sliding
// TTL. Callers always receive and hand over copies.
type Store struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[uuid.UUID]*list.Element
	lru     *list.List
	metrics GaugeRecorder
	now     func() time.Time
}

func NewStore(maxSize int, ttl time.Duration, metrics GaugeRecorder) *Store {
	if maxSize <= 0 {
		maxSize = 1000
	}
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Store{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[uuid.UUID]*list.Element),
		lru:     list.New(),
		metrics: metrics,
		now:     time.Now,
	}
}

// Get returns the user's state and refreshes its TTL.
func (s *Store) Get(userID uuid.UUID) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(userID)
	if !ok {
		return State{}, false
	}
	return e.state.Clone(), true
}

// GetOrCreate returns the user's state, starting an empty one if needed.
func (s *Store) GetOrCreate(userID uuid.UUID, username string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.lookup(userID); ok {
		return e.state.Clone()
	}
	state := New(userID, username)
	s.put(state)
	return state.Clone()
}

func (s *Store) Put(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(state.Clone())
}

// Update applies fn to the user's state under the store lock, so concurrent
// requests of one user never interleave a read-modify-write. The state is
// only saved when fn succeeds.
func (s *Store) Update(userID uuid.UUID, fn func(*State) error) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(userID)
	if !ok {
		return State{}, ErrNoSession
	}

	working := e.state.Clone()
	if err := fn(&working); err != nil {
		return State{}, err
	}
	e.state = working
	return working.Clone(), nil
}

func (s *Store) Delete(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[userID]; ok {
		s.remove(elem)
		s.report()
	}
}

// CleanExpired drops expired sessions and returns how many were removed.
func (s *Store) CleanExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for elem := s.lru.Back(); elem != nil; {
		prev := elem.Prev()
		if now.After(elem.Value.(*entry).expiresAt) {
			s.remove(elem)
			removed++
		}
		elem = prev
	}
	if removed > 0 {
		s.report()
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Run cleans expired sessions every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.CleanExpired()
		}
	}
}

// lookup must be called with mu held.
func (s *Store) lookup(userID uuid.UUID) (*entry, bool) {
	elem, ok := s.items[userID]
	if !ok {
		return nil, false
	}
	e := elem.Value.(*entry)
	if s.now().After(e.expiresAt) {
		s.remove(elem)
		s.report()
		return nil, false
	}
	e.expiresAt = s.now().Add(s.ttl)
	s.lru.MoveToFront(elem)
	return e, true
}

// put must be called with mu held.
func (s *Store) put(state State) {
	expiresAt := s.now().Add(s.ttl)
	if elem, ok := s.items[state.UserID]; ok {
		e := elem.Value.(*entry)
		e.state = state
		e.expiresAt = expiresAt
		s.lru.MoveToFront(elem)
		return
	}

	s.items[state.UserID] = s.lru.PushFront(&entry{userID: state.UserID, state: state, expiresAt: expiresAt})
	if s.lru.Len() > s.maxSize {
		if oldest := s.lru.Back(); oldest != nil {
			s.remove(oldest)
		}
	}
	s.report()
}

func (s *Store) remove(elem *list.Element) {
	delete(s.items, elem.Value.(*entry).userID)
	s.lru.Remove(elem)
}

func (s *Store) report() {
	if s.metrics != nil {
		s.metrics.RecordGauge("sessions.active", float64(len(s.items)), nil)
	}
}
