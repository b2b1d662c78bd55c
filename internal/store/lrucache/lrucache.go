// Package lrucache decorates a storage provider with an in-memory LRU cache
// for key package reads. Key packages are content addressed by their hash
// reference, so a cached entry is valid until it is deleted.
package lrucache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"mlsbridge/internal/domain"
)

// DefaultSize is the number of key packages kept when no size is given.
const DefaultSize = 256

// Store caches key package reads of the wrapped provider. Every other key
// space passes straight through.
type Store struct {
	domain.StorageProvider

	keyPackages *lru.Cache[string, []byte]
}

// New wraps next with a cache of size entries.
func New(next domain.StorageProvider, size int) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("create key package cache: %w", err)
	}
	return &Store{StorageProvider: next, keyPackages: cache}, nil
}

func (s *Store) WriteKeyPackage(ref domain.KeyPackageRef, keyPackage []byte) error {
	if err := s.StorageProvider.WriteKeyPackage(ref, keyPackage); err != nil {
		s.keyPackages.Remove(string(ref))
		return err
	}
	s.keyPackages.Add(string(ref), append([]byte{}, keyPackage...))
	return nil
}

func (s *Store) ReadKeyPackage(ref domain.KeyPackageRef) ([]byte, bool, error) {
	if v, ok := s.keyPackages.Get(string(ref)); ok {
		return append([]byte{}, v...), true, nil
	}
	v, ok, err := s.StorageProvider.ReadKeyPackage(ref)
	if err != nil || !ok {
		return v, ok, err
	}
	s.keyPackages.Add(string(ref), append([]byte{}, v...))
	return v, true, nil
}

func (s *Store) DeleteKeyPackage(ref domain.KeyPackageRef) error {
	s.keyPackages.Remove(string(ref))
	return s.StorageProvider.DeleteKeyPackage(ref)
}

// Cached reports how many key packages are currently cached.
func (s *Store) Cached() int { return s.keyPackages.Len() }

// Compile-time assertion that Store implements domain.StorageProvider.
var _ domain.StorageProvider = (*Store)(nil)
