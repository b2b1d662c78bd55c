package store

import "sync"

// MemoryStore keeps every key space in process memory.
type MemoryStore struct {
	*Provider

	mu     sync.RWMutex
	spaces map[Space]map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{spaces: make(map[Space]map[string][]byte, len(Spaces))}
	for _, sp := range Spaces {
		s.spaces[sp] = make(map[string][]byte)
	}
	s.Provider = NewProvider(s)
	return s
}

func (s *MemoryStore) Put(space Space, key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spaces[space][string(key)] = append([]byte{}, value...)
	return nil
}

func (s *MemoryStore) Get(space Space, key []byte) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.spaces[space][string(key)]
	if !ok {
		return nil, false, nil
	}
	return append([]byte{}, v...), true, nil
}

func (s *MemoryStore) Delete(space Space, key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.spaces[space], string(key))
	return nil
}

// Len returns the number of keys held in space.
func (s *MemoryStore) Len(space Space) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.spaces[space])
}

var _ Backend = (*MemoryStore)(nil)
