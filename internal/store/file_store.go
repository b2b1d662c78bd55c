package store

import (
	"encoding/hex"
	"path/filepath"
	"sync"
)

// FileStore keeps one JSON file per key space under dir. Each file maps the
// hex form of a key to its stored value. Every write rewrites the whole file
// through a temp file and rename.
//
// With a passphrase, values in secret key spaces are sealed with a key
// derived by scrypt; group state and key packages stay in the clear.
type FileStore struct {
	*Provider

	dir        string
	passphrase string
	kdf        scryptParams
	sealer     *sealer
	mu         sync.Mutex
}

// FileOption configures a FileStore.
type FileOption func(*FileStore)

// WithPassphrase seals secret key spaces with passphrase.
func WithPassphrase(passphrase string) FileOption {
	return func(s *FileStore) { s.passphrase = passphrase }
}

// WithScryptCost overrides the scrypt CPU/memory cost N used when sealing.
func WithScryptCost(n int) FileOption {
	return func(s *FileStore) { s.kdf.N = n }
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string, opts ...FileOption) *FileStore {
	s := &FileStore{dir: dir, kdf: scryptParamsDefault()}
	for _, o := range opts {
		o(s)
	}
	if s.passphrase != "" {
		s.sealer = newSealer(s.passphrase, s.kdf)
	}
	s.Provider = NewProvider(s)
	return s
}

func (s *FileStore) path(space Space) string {
	return filepath.Join(s.dir, string(space)+".json")
}

func (s *FileStore) sealed(space Space) bool {
	return s.sealer != nil && space.Secret()
}

func slotAD(space Space, key []byte) []byte {
	return append([]byte(string(space)+"/"), key...)
}

func (s *FileStore) load(space Space) (map[string][]byte, error) {
	m := make(map[string][]byte)
	if err := readJSON(s.path(space), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *FileStore) Put(space Space, key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load(space)
	if err != nil {
		return err
	}
	if s.sealed(space) {
		if value, err = s.sealer.seal(value, slotAD(space, key)); err != nil {
			return err
		}
	}
	m[hex.EncodeToString(key)] = value
	return writeJSON(s.path(space), m, 0o600)
}

func (s *FileStore) Get(space Space, key []byte) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load(space)
	if err != nil {
		return nil, false, err
	}
	v, ok := m[hex.EncodeToString(key)]
	if !ok {
		return nil, false, nil
	}
	if s.sealed(space) {
		if v, err = s.sealer.open(v, slotAD(space, key)); err != nil {
			return nil, false, err
		}
	}
	return v, true, nil
}

func (s *FileStore) Delete(space Space, key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load(space)
	if err != nil {
		return err
	}
	k := hex.EncodeToString(key)
	if _, ok := m[k]; !ok {
		return nil
	}
	delete(m, k)
	return writeJSON(s.path(space), m, 0o600)
}

var _ Backend = (*FileStore)(nil)
