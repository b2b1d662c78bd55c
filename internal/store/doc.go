// Package store provides persistence for protocol key material and group
// state.
//
// Provider maps the six storage key spaces (group state, key packages,
// signature key pairs, encryption key pairs, per-epoch encryption key pairs
// and pre-shared keys) onto a flat Backend, framing every value with a
// record version. Backends only move opaque bytes:
//   - MemoryStore keeps everything in maps (default, tests)
//   - FileStore keeps one JSON file per key space under a home directory and
//     can seal secret key spaces with a passphrase
//   - badgerstore and sqlitestore (subpackages) use embedded databases
//
// ProfileFileStore keeps the local profile list used by the CLI. All types
// are concurrency-safe via internal locking.
package store
