package types

import "encoding/hex"

// GroupID identifies a group conversation. It is bound once, at create or
// join time, and never changes afterwards.
type GroupID []byte

// String returns the hex form of the group id.
func (g GroupID) String() string { return hex.EncodeToString(g) }

// Clone returns a copy that does not alias g.
func (g GroupID) Clone() GroupID { return append(GroupID(nil), g...) }

// Epoch counts the cryptographic states a group has gone through.
type Epoch uint64

// LeafIndex is a member's position in the group roster.
type LeafIndex uint32

// KeyPackageRef is the hash reference a key package is stored under.
type KeyPackageRef []byte

// String returns the hex form of the reference.
func (r KeyPackageRef) String() string { return hex.EncodeToString(r) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// GroupState is the engine's serialized group state. The adapter stores it
// and hands it back to the engine but never looks inside.
type GroupState []byte
