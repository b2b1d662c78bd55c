package domain

import (
	interfaces "mlsbridge/internal/domain/interfaces"
	types "mlsbridge/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	GroupID          = types.GroupID
	Epoch            = types.Epoch
	LeafIndex        = types.LeafIndex
	KeyPackageRef    = types.KeyPackageRef
	Fingerprint      = types.Fingerprint
	GroupState       = types.GroupState
	SignatureKeyPair = types.SignatureKeyPair
	HPKEKeyPair      = types.HPKEKeyPair
	Credential       = types.Credential
	MessageKind      = types.MessageKind
	Message          = types.Message
	KeyPackage       = types.KeyPackage
	Member           = types.Member
	CommitOutput     = types.CommitOutput
	ProcessedMessage = types.ProcessedMessage
	Commit           = types.Commit
	Ciphertext       = types.Ciphertext
	GroupInfo        = types.GroupInfo
	MemberInfo       = types.MemberInfo
	Profile          = types.Profile
)

const (
	KindUnknown      = types.KindUnknown
	KindApplication  = types.KindApplication
	KindProposal     = types.KindProposal
	KindCommit       = types.KindCommit
	KindWelcome      = types.KindWelcome
	KindExternalJoin = types.KindExternalJoin
	KindKeyPackage   = types.KindKeyPackage
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Engine             = interfaces.Engine
	CryptoProvider     = interfaces.CryptoProvider
	StorageProvider    = interfaces.StorageProvider
	GroupStateStore    = interfaces.GroupStateStore
	KeyPackageStore    = interfaces.KeyPackageStore
	SignatureKeyStore  = interfaces.SignatureKeyStore
	EncryptionKeyStore = interfaces.EncryptionKeyStore
	EpochKeyStore      = interfaces.EpochKeyStore
	PSKStore           = interfaces.PSKStore
	ProfileStore       = interfaces.ProfileStore
)

// DecodeSignatureKeyPair parses a stored signature key pair.
func DecodeSignatureKeyPair(b []byte) (SignatureKeyPair, error) {
	return types.DecodeSignatureKeyPair(b)
}

// DecodeHPKEKeyPair parses a stored HPKE key pair.
func DecodeHPKEKeyPair(b []byte) (HPKEKeyPair, error) {
	return types.DecodeHPKEKeyPair(b)
}
