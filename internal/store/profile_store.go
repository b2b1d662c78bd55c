package store

import (
	"path/filepath"
	"sync"

	"mlsbridge/internal/domain"
)

const profilesFile = "profiles.json"

// ProfileFileStore persists local profiles to disk.
type ProfileFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewProfileFileStore returns a ProfileFileStore rooted at dir.
func NewProfileFileStore(dir string) *ProfileFileStore {
	return &ProfileFileStore{dir: dir}
}

// SaveProfile stores or updates the given profile.
func (s *ProfileFileStore) SaveProfile(profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, profilesFile)
	profiles := make(map[string]domain.Profile)
	if err := readJSON(path, &profiles); err != nil {
		return err
	}
	profiles[profile.Name] = profile
	return writeJSON(path, profiles, 0o600)
}

// LoadProfile retrieves the profile called name.
func (s *ProfileFileStore) LoadProfile(name string) (domain.Profile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, profilesFile)
	profiles := make(map[string]domain.Profile)
	if err := readJSON(path, &profiles); err != nil {
		return domain.Profile{}, false, err
	}
	profile, ok := profiles[name]
	return profile, ok, nil
}

// Compile-time assertion that ProfileFileStore implements domain.ProfileStore.
var _ domain.ProfileStore = (*ProfileFileStore)(nil)
