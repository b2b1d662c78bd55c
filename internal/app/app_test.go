package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mlsbridge/internal/domain"
)

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	w, err := NewWire(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return New(w)
}

func TestApp_ProfileLifecycle(t *testing.T) {
	for _, backend := range []string{StoreMemory, StoreFile, StoreSQLite} {
		t.Run(backend, func(t *testing.T) {
			r := require.New(t)
			a := newTestApp(t, Config{Home: t.TempDir(), Store: backend, KeyPackageCache: 8})

			c, err := a.InitProfile("alice", "user1")
			r.NoError(err)
			_, err = a.InitProfile("alice", "user1")
			r.ErrorIs(err, ErrProfileExists)

			gid := domain.GroupID{5, 6, 7, 8}
			_, err = c.CreateGroup(gid)
			r.NoError(err)
			r.NoError(a.TrackGroup("alice", gid))
			r.NoError(a.TrackGroup("alice", gid))

			groups, err := a.Groups("alice")
			r.NoError(err)
			r.Equal([]string{"05060708"}, groups)

			s, err := a.Session("alice", "05060708")
			r.NoError(err)
			epoch, err := s.CurrentEpoch()
			r.NoError(err)
			r.Equal(uint64(0), epoch)

			restored, err := a.Client("alice")
			r.NoError(err)
			r.Equal(c.Fingerprint(), restored.Fingerprint())
		})
	}
}

func TestApp_UnknownProfile(t *testing.T) {
	a := newTestApp(t, Config{Home: t.TempDir(), Store: StoreMemory})
	_, err := a.Client("nobody")
	require.ErrorIs(t, err, ErrNoProfile)
}

func TestParseGroupID(t *testing.T) {
	r := require.New(t)
	id, err := ParseGroupID("0a0b")
	r.NoError(err)
	r.Equal(domain.GroupID{0x0a, 0x0b}, id)

	_, err = ParseGroupID("")
	r.Error(err)
	_, err = ParseGroupID("zz")
	r.Error(err)
}
