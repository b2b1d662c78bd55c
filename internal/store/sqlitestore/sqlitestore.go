// Package sqlitestore keeps the storage key spaces in a SQLite database,
// one table per space.
package sqlitestore

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"mlsbridge/internal/store"
)

//go:embed schema.sql
var schemaSQL string

// Table names match store.Space values; only these are ever interpolated.
var tables = map[store.Space]string{
	store.SpaceGroupState:    "group_state",
	store.SpaceKeyPackage:    "key_package",
	store.SpaceSignatureKey:  "signature_key",
	store.SpaceEncryptionKey: "encryption_key",
	store.SpaceEpochKeyPairs: "epoch_key_pairs",
	store.SpacePSK:           "psk",
}

var errUnknownSpace = errors.New("sqlitestore: unknown key space")

// Store is a SQLite-backed storage provider.
type Store struct {
	*store.Provider

	db *sql.DB
}

// Open opens (or creates) the database at dbPath and applies the schema.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+
		"?_pragma=journal_mode(WAL)"+
		"&_pragma=busy_timeout(5000)"+
		"&_pragma=synchronous(FULL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite handles concurrent writers poorly.
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	s := &Store{db: db}
	s.Provider = store.NewProvider(s)
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func table(space store.Space) (string, error) {
	t, ok := tables[space]
	if !ok {
		return "", fmt.Errorf("%w: %s", errUnknownSpace, space)
	}
	return t, nil
}

func (s *Store) Put(space store.Space, k, value []byte) error {
	t, err := table(space)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(context.Background(),
		`INSERT INTO `+t+` (k, v) VALUES (?, ?)
		 ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		k, value)
	return err
}

func (s *Store) Get(space store.Space, k []byte) ([]byte, bool, error) {
	t, err := table(space)
	if err != nil {
		return nil, false, err
	}
	var v []byte
	err = s.db.QueryRowContext(context.Background(),
		`SELECT v FROM `+t+` WHERE k = ?`, k).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if v == nil {
		v = []byte{}
	}
	return v, true, nil
}

func (s *Store) Delete(space store.Space, k []byte) error {
	t, err := table(space)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(context.Background(), `DELETE FROM `+t+` WHERE k = ?`, k)
	return err
}

var _ store.Backend = (*Store)(nil)
