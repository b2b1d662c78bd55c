// Package storetest is a conformance suite for domain.StorageProvider
// implementations.
package storetest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mlsbridge/internal/domain"
)

// Factory returns a fresh, empty provider for one subtest.
type Factory func(t *testing.T) domain.StorageProvider

// Run exercises every key space of the providers built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("GroupState", func(t *testing.T) {
		s := newStore(t)
		testKeyed(t,
			func(k, v []byte) error { return s.WriteGroupState(k, v) },
			func(k []byte) ([]byte, bool, error) { return s.ReadGroupState(k) },
			func(k []byte) error { return s.DeleteGroupState(k) },
		)
	})
	t.Run("KeyPackage", func(t *testing.T) {
		s := newStore(t)
		testKeyed(t,
			func(k, v []byte) error { return s.WriteKeyPackage(k, v) },
			func(k []byte) ([]byte, bool, error) { return s.ReadKeyPackage(k) },
			func(k []byte) error { return s.DeleteKeyPackage(k) },
		)
	})
	t.Run("SignatureKeyPair", func(t *testing.T) {
		s := newStore(t)
		testKeyed(t, s.WriteSignatureKeyPair, s.ReadSignatureKeyPair, s.DeleteSignatureKeyPair)
	})
	t.Run("EncryptionKeyPair", func(t *testing.T) {
		s := newStore(t)
		testKeyed(t, s.WriteEncryptionKeyPair, s.ReadEncryptionKeyPair, s.DeleteEncryptionKeyPair)
	})
	t.Run("PSK", func(t *testing.T) {
		s := newStore(t)
		testKeyed(t, s.WritePSK, s.ReadPSK, s.DeletePSK)
	})
	t.Run("EpochKeyPairs", func(t *testing.T) {
		testEpochKeyPairs(t, newStore(t))
	})
	t.Run("SpacesAreIndependent", func(t *testing.T) {
		testIndependence(t, newStore(t))
	})
}

func testKeyed(
	t *testing.T,
	write func(k, v []byte) error,
	read func(k []byte) ([]byte, bool, error),
	del func(k []byte) error,
) {
	t.Helper()
	r := require.New(t)

	key := []byte{0x00, 0x01, 0xff}
	other := []byte("other")

	v, ok, err := read(key)
	r.NoError(err)
	r.False(ok, "absent key must report not found")
	r.Nil(v)

	r.NoError(write(key, []byte("first")))
	r.NoError(write(other, []byte("untouched")))

	v, ok, err = read(key)
	r.NoError(err)
	r.True(ok)
	r.Equal([]byte("first"), v)

	r.NoError(write(key, []byte("second")))
	v, _, err = read(key)
	r.NoError(err)
	r.Equal([]byte("second"), v)

	r.NoError(write(key, []byte{}))
	v, ok, err = read(key)
	r.NoError(err)
	r.True(ok, "empty values are still present")
	r.Empty(v)

	r.NoError(del(key))
	_, ok, err = read(key)
	r.NoError(err)
	r.False(ok)

	r.NoError(del(key), "deleting an absent key is not an error")

	v, ok, err = read(other)
	r.NoError(err)
	r.True(ok)
	r.Equal([]byte("untouched"), v)
}

func testEpochKeyPairs(t *testing.T, s domain.StorageProvider) {
	r := require.New(t)
	group := domain.GroupID("group-a")

	got, err := s.ReadEncryptionEpochKeyPairs(group, 3, 1)
	r.NoError(err)
	r.NotNil(got)
	r.Empty(got)

	pairs := [][]byte{[]byte("kp-1"), []byte("kp-2")}
	r.NoError(s.WriteEncryptionEpochKeyPairs(group, 3, 1, pairs))
	r.NoError(s.WriteEncryptionEpochKeyPairs(group, 3, 2, [][]byte{[]byte("leaf-2")}))
	r.NoError(s.WriteEncryptionEpochKeyPairs(group, 4, 1, [][]byte{[]byte("next")}))

	got, err = s.ReadEncryptionEpochKeyPairs(group, 3, 1)
	r.NoError(err)
	r.Equal(pairs, got)

	r.NoError(s.WriteEncryptionEpochKeyPairs(group, 3, 1, [][]byte{[]byte("kp-3")}))
	got, err = s.ReadEncryptionEpochKeyPairs(group, 3, 1)
	r.NoError(err)
	r.Equal([][]byte{[]byte("kp-3")}, got, "write replaces the whole list")

	r.NoError(s.DeleteEncryptionEpochKeyPairs(group, 3, 1))
	got, err = s.ReadEncryptionEpochKeyPairs(group, 3, 1)
	r.NoError(err)
	r.Empty(got)

	got, err = s.ReadEncryptionEpochKeyPairs(group, 3, 2)
	r.NoError(err)
	r.Equal([][]byte{[]byte("leaf-2")}, got)
	got, err = s.ReadEncryptionEpochKeyPairs(group, 4, 1)
	r.NoError(err)
	r.Equal([][]byte{[]byte("next")}, got)

	got, err = s.ReadEncryptionEpochKeyPairs(domain.GroupID("group-b"), 4, 1)
	r.NoError(err)
	r.Empty(got)
}

func testIndependence(t *testing.T, s domain.StorageProvider) {
	r := require.New(t)
	key := []byte("same-key")

	r.NoError(s.WriteGroupState(key, []byte("state")))
	r.NoError(s.WriteKeyPackage(key, []byte("kp")))
	r.NoError(s.WriteSignatureKeyPair(key, []byte("sig")))

	_, ok, err := s.ReadEncryptionKeyPair(key)
	r.NoError(err)
	r.False(ok)
	_, ok, err = s.ReadPSK(key)
	r.NoError(err)
	r.False(ok)

	r.NoError(s.DeleteKeyPackage(key))
	v, ok, err := s.ReadGroupState(key)
	r.NoError(err)
	r.True(ok)
	r.Equal([]byte("state"), v)
	v, ok, err = s.ReadSignatureKeyPair(key)
	r.NoError(err)
	r.True(ok)
	r.Equal([]byte("sig"), v)
}
