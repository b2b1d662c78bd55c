//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=../../mocks/mock_engine.go -package=mocks
package interfaces

import domaintypes "mlsbridge/internal/domain/types"

// Engine is the group key-agreement protocol engine. Implementations own
// the wire encoding and the state format; callers treat both as opaque.
//
// Engines resolve a member's signer from the signature key space using the
// credential's signature public key, and keep their own private key material
// in the storage provider they were built with.
type Engine interface {
	CreateGroup(
		groupID domaintypes.GroupID,
		credential domaintypes.Credential,
	) (domaintypes.GroupState, error)
	JoinGroup(welcome domaintypes.Message) (domaintypes.GroupState, error)
	// ConsumeKeyPackage deletes the key package a welcome used. Callers run
	// it only after the joined state is durable.
	ConsumeKeyPackage(welcome domaintypes.Message) error

	GenerateKeyPackage(credential domaintypes.Credential) (domaintypes.KeyPackage, error)
	KeyPackageRef(keyPackage domaintypes.KeyPackage) (domaintypes.KeyPackageRef, error)
	ParseKeyPackage(raw []byte) (domaintypes.KeyPackage, error)
	ParseMessage(raw []byte) (domaintypes.Message, error)

	CommitAdd(
		state domaintypes.GroupState,
		keyPackages []domaintypes.KeyPackage,
	) (domaintypes.CommitOutput, error)
	CommitRemove(
		state domaintypes.GroupState,
		leaves []domaintypes.LeafIndex,
	) (domaintypes.CommitOutput, error)
	MergePendingCommit(state domaintypes.GroupState) (domaintypes.GroupState, error)
	ClearPendingCommit(state domaintypes.GroupState) (domaintypes.GroupState, error)
	HasPendingCommit(state domaintypes.GroupState) (bool, error)

	EncryptApplication(
		state domaintypes.GroupState,
		plaintext []byte,
	) ([]byte, domaintypes.GroupState, error)
	ProcessIncoming(
		state domaintypes.GroupState,
		message domaintypes.Message,
	) (domaintypes.ProcessedMessage, error)

	Members(state domaintypes.GroupState) ([]domaintypes.Member, error)
	CurrentEpoch(state domaintypes.GroupState) (domaintypes.Epoch, error)
	GroupID(state domaintypes.GroupState) (domaintypes.GroupID, error)
}
