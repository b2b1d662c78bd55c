// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment, builds the storage backend, crypto
// provider and protocol engine from it, and exposes profile-level helpers
// that turn a profile name into an identity client or group session.
package app
