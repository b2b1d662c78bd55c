package store

import (
	"encoding/binary"

	"mlsbridge/internal/domain"
)

// Space names one storage key space.
type Space string

const (
	SpaceGroupState    Space = "group_state"
	SpaceKeyPackage    Space = "key_package"
	SpaceSignatureKey  Space = "signature_key"
	SpaceEncryptionKey Space = "encryption_key"
	SpaceEpochKeyPairs Space = "epoch_key_pairs"
	SpacePSK           Space = "psk"
)

// Spaces lists every key space in a stable order.
var Spaces = []Space{
	SpaceGroupState,
	SpaceKeyPackage,
	SpaceSignatureKey,
	SpaceEncryptionKey,
	SpaceEpochKeyPairs,
	SpacePSK,
}

// Secret reports whether values in the space are private key material.
func (s Space) Secret() bool {
	switch s {
	case SpaceSignatureKey, SpaceEncryptionKey, SpaceEpochKeyPairs, SpacePSK:
		return true
	default:
		return false
	}
}

// EpochKeyID is the flat key for the (group, epoch, leaf) triple.
func EpochKeyID(groupID domain.GroupID, epoch domain.Epoch, leaf domain.LeafIndex) []byte {
	out := make([]byte, 0, 1+len(groupID)+12)
	out = append(out, byte(len(groupID)))
	out = append(out, groupID...)
	out = binary.BigEndian.AppendUint64(out, uint64(epoch))
	return binary.BigEndian.AppendUint32(out, uint32(leaf))
}
