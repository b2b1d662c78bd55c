//go:generate go run go.uber.org/mock/mockgen -source=storage.go -destination=../../mocks/mock_storage.go -package=mocks
package interfaces

import domaintypes "mlsbridge/internal/domain/types"

// Every read returns (value, found, err): absence is not an error. Writes
// and deletes are atomic per key. Values are opaque and never interpreted.

// GroupStateStore persists serialized group state by group id.
type GroupStateStore interface {
	WriteGroupState(groupID domaintypes.GroupID, state []byte) error
	ReadGroupState(groupID domaintypes.GroupID) ([]byte, bool, error)
	DeleteGroupState(groupID domaintypes.GroupID) error
}

// KeyPackageStore persists key packages by their hash reference.
type KeyPackageStore interface {
	WriteKeyPackage(ref domaintypes.KeyPackageRef, keyPackage []byte) error
	ReadKeyPackage(ref domaintypes.KeyPackageRef) ([]byte, bool, error)
	DeleteKeyPackage(ref domaintypes.KeyPackageRef) error
}

// SignatureKeyStore persists signature key pairs by public key.
type SignatureKeyStore interface {
	WriteSignatureKeyPair(publicKey []byte, keyPair []byte) error
	ReadSignatureKeyPair(publicKey []byte) ([]byte, bool, error)
	DeleteSignatureKeyPair(publicKey []byte) error
}

// EncryptionKeyStore persists HPKE key pairs (key package init keys) by
// public key.
type EncryptionKeyStore interface {
	WriteEncryptionKeyPair(publicKey []byte, keyPair []byte) error
	ReadEncryptionKeyPair(publicKey []byte) ([]byte, bool, error)
	DeleteEncryptionKeyPair(publicKey []byte) error
}

// EpochKeyStore persists the key pairs a leaf holds in one epoch of a group.
// It is multi-valued: a write replaces the whole list for the triple, a read
// of an absent triple returns an empty list.
type EpochKeyStore interface {
	WriteEncryptionEpochKeyPairs(
		groupID domaintypes.GroupID,
		epoch domaintypes.Epoch,
		leaf domaintypes.LeafIndex,
		keyPairs [][]byte,
	) error
	ReadEncryptionEpochKeyPairs(
		groupID domaintypes.GroupID,
		epoch domaintypes.Epoch,
		leaf domaintypes.LeafIndex,
	) ([][]byte, error)
	DeleteEncryptionEpochKeyPairs(
		groupID domaintypes.GroupID,
		epoch domaintypes.Epoch,
		leaf domaintypes.LeafIndex,
	) error
}

// PSKStore persists pre-shared keys by psk id.
type PSKStore interface {
	WritePSK(pskID []byte, psk []byte) error
	ReadPSK(pskID []byte) ([]byte, bool, error)
	DeletePSK(pskID []byte) error
}

// StorageProvider is the full capability set a host supplies.
type StorageProvider interface {
	GroupStateStore
	KeyPackageStore
	SignatureKeyStore
	EncryptionKeyStore
	EpochKeyStore
	PSKStore
}
