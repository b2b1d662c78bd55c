package badgerstore_test

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"mlsbridge/internal/domain"
	"mlsbridge/internal/store/badgerstore"
	"mlsbridge/internal/store/storetest"
)

func openInMemory(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStore_Conformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) domain.StorageProvider {
		return badgerstore.New(openInMemory(t))
	})
}

func TestStore_ReopenKeepsData(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()

	db, err := badgerstore.Open(dir)
	r.NoError(err)
	r.NoError(badgerstore.New(db).WriteGroupState(domain.GroupID("g"), []byte("state")))
	r.NoError(db.Close())

	db, err = badgerstore.Open(dir)
	r.NoError(err)
	defer db.Close()

	v, ok, err := badgerstore.New(db).ReadGroupState(domain.GroupID("g"))
	r.NoError(err)
	r.True(ok)
	r.Equal([]byte("state"), v)
}
