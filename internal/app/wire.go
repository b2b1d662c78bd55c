package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"mlsbridge/internal/crypto"
	"mlsbridge/internal/domain"
	"mlsbridge/internal/logging"
	"mlsbridge/internal/protocol/flatgroup"
	"mlsbridge/internal/services/group"
	"mlsbridge/internal/services/identity"
	"mlsbridge/internal/store"
	"mlsbridge/internal/store/badgerstore"
	"mlsbridge/internal/store/lrucache"
	"mlsbridge/internal/store/sqlitestore"
)

// Wire bundles the storage provider, crypto provider and engine for the CLI.
type Wire struct {
	Storage  domain.StorageProvider
	Crypto   domain.CryptoProvider
	Engine   domain.Engine
	Profiles domain.ProfileStore
	Logger   *slog.Logger
	Session  []group.Option

	closers []io.Closer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &Wire{Logger: logging.New(logging.ProfileRuntime, cfg.LogLevel)}

	backend, err := w.openStorage(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.KeyPackageCache > 0 {
		cached, err := lrucache.New(backend, cfg.KeyPackageCache)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		backend = cached
	}
	w.Storage = backend
	w.Crypto = crypto.NewProvider()
	w.Engine = flatgroup.New(w.Crypto, w.Storage)
	w.Profiles = store.NewProfileFileStore(cfg.Home)
	if cfg.DeferMerge {
		w.Session = append(w.Session, group.WithDeferredMerge())
	}
	w.Logger.Debug("wired", "store", cfg.Store, "home", cfg.Home, "kp_cache", cfg.KeyPackageCache)
	return w, nil
}

func (w *Wire) openStorage(cfg Config) (domain.StorageProvider, error) {
	if cfg.Store != StoreMemory {
		if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
			return nil, err
		}
	}
	switch cfg.Store {
	case StoreMemory:
		return store.NewMemoryStore(), nil
	case StoreFile:
		var opts []store.FileOption
		if cfg.Passphrase != "" {
			opts = append(opts, store.WithPassphrase(cfg.Passphrase))
		}
		return store.NewFileStore(cfg.Home, opts...), nil
	case StoreBadger:
		db, err := badgerstore.Open(filepath.Join(cfg.Home, "badger"))
		if err != nil {
			return nil, err
		}
		w.closers = append(w.closers, db)
		return badgerstore.New(db), nil
	case StoreSQLite:
		s, err := sqlitestore.Open(filepath.Join(cfg.Home, "mlsbridge.db"))
		if err != nil {
			return nil, err
		}
		w.closers = append(w.closers, s)
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// Deps returns the collaborators identity clients are built from.
func (w *Wire) Deps() identity.Deps {
	return identity.Deps{
		Engine:  w.Engine,
		Crypto:  w.Crypto,
		Storage: w.Storage,
		Logger:  w.Logger,
		Session: w.Session,
	}
}

// Close releases database handles.
func (w *Wire) Close() error {
	var errs []error
	for _, c := range w.closers {
		errs = append(errs, c.Close())
	}
	w.closers = nil
	return errors.Join(errs...)
}
