// Package badgerstore keeps the storage key spaces in a Badger database,
// one key prefix per space.
package badgerstore

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"mlsbridge/internal/store"
)

var prefixes = map[store.Space]string{
	store.SpaceGroupState:    "gs:",
	store.SpaceKeyPackage:    "kp:",
	store.SpaceSignatureKey:  "sig:",
	store.SpaceEncryptionKey: "enc:",
	store.SpaceEpochKeyPairs: "epk:",
	store.SpacePSK:           "psk:",
}

// Store is a Badger-backed storage provider. It does not own the database.
type Store struct {
	*store.Provider

	db *badger.DB
}

// New wraps an open database.
func New(db *badger.DB) *Store {
	s := &Store{db: db}
	s.Provider = store.NewProvider(s)
	return s
}

// Open opens (or creates) a database under dir. The caller closes it.
func Open(dir string) (*badger.DB, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}
	return db, nil
}

func key(space store.Space, k []byte) []byte {
	p := prefixes[space]
	out := make([]byte, 0, len(p)+len(k))
	out = append(out, p...)
	return append(out, k...)
}

func (s *Store) Put(space store.Space, k, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(space, k), value)
	})
}

func (s *Store) Get(space store.Space, k []byte) ([]byte, bool, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(space, k))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (s *Store) Delete(space store.Space, k []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(space, k))
	})
}

var _ store.Backend = (*Store)(nil)
