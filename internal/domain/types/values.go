package types

// Commit is handed to the host after an add or remove. Commit goes to every
// existing member; Welcome holds one entry per newly admitted member.
type Commit struct {
	Commit  []byte   `json:"commit"`
	Welcome [][]byte `json:"welcome"`
}

// Ciphertext is an encrypted application message and the epoch it was
// produced in, so receivers can spot stale or future messages early.
type Ciphertext struct {
	Data  []byte `json:"data"`
	Epoch uint64 `json:"epoch"`
}

// GroupInfo is a read-only snapshot of a group.
type GroupInfo struct {
	ID      string       `json:"id"`
	Epoch   uint64       `json:"epoch"`
	Members []MemberInfo `json:"members"`
}

// MemberInfo describes one member in a GroupInfo snapshot.
type MemberInfo struct {
	ID           string `json:"id"`
	Credential   []byte `json:"credential"`
	AddedAtEpoch uint64 `json:"added_at_epoch"`
}
