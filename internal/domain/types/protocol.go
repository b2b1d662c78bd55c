package types

// MessageKind classifies a decoded protocol message.
type MessageKind uint8

const (
	KindUnknown MessageKind = iota
	KindApplication
	KindProposal
	KindCommit
	KindWelcome
	// KindExternalJoin covers group-info style messages used to join a group
	// without a welcome.
	KindExternalJoin
	KindKeyPackage
)

func (k MessageKind) String() string {
	switch k {
	case KindApplication:
		return "application"
	case KindProposal:
		return "proposal"
	case KindCommit:
		return "commit"
	case KindWelcome:
		return "welcome"
	case KindExternalJoin:
		return "external-join"
	case KindKeyPackage:
		return "key-package"
	default:
		return "unknown"
	}
}

// Message is a decoded but not yet processed protocol message. Raw holds the
// exact bytes it was decoded from.
type Message struct {
	Kind MessageKind
	Raw  []byte
}

// KeyPackage is a decoded key package offered by a prospective member.
type KeyPackage struct {
	Raw        []byte
	Credential Credential
	InitKey    []byte
}

// Member is one occupied leaf of a group.
type Member struct {
	Index      LeafIndex
	Credential Credential
	AddedAt    Epoch
}

// CommitOutput is the result of a self-authored commit. State carries the
// commit as pending until it is merged or cleared.
type CommitOutput struct {
	Commit   []byte
	Welcomes [][]byte
	State    GroupState
}

// ProcessedMessage is the engine's classification of an incoming message.
// State is the group state after processing; for commits it is the merged
// next-epoch state.
type ProcessedMessage struct {
	Kind        MessageKind
	Sender      LeafIndex
	Application []byte
	State       GroupState
}
