// Package group drives one group conversation through the protocol engine.
//
// A Session holds only its group id. Every operation reloads the group state
// from storage, asks the engine for exactly one transition, persists the
// result and only then hands a boundary value back to the caller. When the
// write fails the computed output is discarded and a storage error is
// returned, so callers never act on a commit or ciphertext whose state was
// not saved.
//
// Sessions do no locking: the host serializes mutating calls per group id.
// Failures are reported as *mlserr.Error.
package group
