package lrucache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mlsbridge/internal/domain"
	"mlsbridge/internal/store"
	"mlsbridge/internal/store/lrucache"
	"mlsbridge/internal/store/storetest"
)

func TestStore_Conformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) domain.StorageProvider {
		s, err := lrucache.New(store.NewMemoryStore(), 4)
		require.NoError(t, err)
		return s
	})
}

func TestStore_ServesReadsFromCache(t *testing.T) {
	r := require.New(t)
	backing := store.NewMemoryStore()
	s, err := lrucache.New(backing, 2)
	r.NoError(err)

	ref := domain.KeyPackageRef("ref-1")
	r.NoError(s.WriteKeyPackage(ref, []byte("kp")))
	r.Equal(1, s.Cached())

	// Drop the record underneath; the cache still answers.
	r.NoError(backing.Delete(store.SpaceKeyPackage, ref))
	v, ok, err := s.ReadKeyPackage(ref)
	r.NoError(err)
	r.True(ok)
	r.Equal([]byte("kp"), v)

	r.NoError(s.DeleteKeyPackage(ref))
	_, ok, err = s.ReadKeyPackage(ref)
	r.NoError(err)
	r.False(ok)
	r.Zero(s.Cached())
}

func TestStore_Evicts(t *testing.T) {
	r := require.New(t)
	s, err := lrucache.New(store.NewMemoryStore(), 2)
	r.NoError(err)

	for _, ref := range []string{"a", "b", "c"} {
		r.NoError(s.WriteKeyPackage(domain.KeyPackageRef(ref), []byte(ref)))
	}
	r.Equal(2, s.Cached())

	v, ok, err := s.ReadKeyPackage(domain.KeyPackageRef("a"))
	r.NoError(err)
	r.True(ok, "evicted entries are read through")
	r.Equal([]byte("a"), v)
}
