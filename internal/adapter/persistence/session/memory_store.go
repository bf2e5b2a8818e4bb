package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"autopaint_quotation/internal/domain/wizard"
	"autopaint_quotation/internal/usecase/interfaces"
)

type memoryEntry struct {
	snapshot  []byte
	expiresAt time.Time
}

// MemoryStore keeps wizard sessions in process. Sessions are stored as JSON
// snapshots so callers never share a *wizard.Wizard.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

var _ interfaces.IWizardSessionStore = (*MemoryStore)(nil)

// NewMemoryStore expires sessions ttl after their last save. A ttl <= 0
// never expires them.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*wizard.Wizard, error) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if ok && s.expired(e) {
		delete(s.entries, id)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var w wizard.Wizard
	if err := json.Unmarshal(e.snapshot, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *MemoryStore) Save(_ context.Context, w *wizard.Wizard) error {
	b, err := json.Marshal(w)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e := memoryEntry{snapshot: b}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.entries[w.ID] = e
	s.sweep()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	return len(s.entries)
}

func (s *MemoryStore) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt)
}

// sweep drops expired entries. Callers hold s.mu.
func (s *MemoryStore) sweep() {
	for id, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, id)
		}
	}
}
