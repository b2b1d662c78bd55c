package domain

import "errors"

// Engines and stores wrap these so the boundary can classify a failure
// without knowing which backend produced it.
var (
	// ErrDecode marks malformed or truncated input bytes.
	ErrDecode = errors.New("malformed encoding")
	// ErrCrypto marks a failed primitive: signature, AEAD, key generation.
	ErrCrypto = errors.New("cryptographic failure")
	// ErrWrongEpoch marks a message produced for a different epoch.
	ErrWrongEpoch = errors.New("message for wrong epoch")
	// ErrPendingCommit marks a commit attempted while another is outstanding.
	ErrPendingCommit = errors.New("commit already pending")
	// ErrNoPendingCommit marks a merge with nothing to merge.
	ErrNoPendingCommit = errors.New("no pending commit")
	// ErrInactive marks a group this member was removed from.
	ErrInactive = errors.New("member no longer in group")
	// ErrUnknownMember marks a leaf index with no member.
	ErrUnknownMember = errors.New("unknown member")
	// ErrUnexpectedMessage marks a message kind the operation cannot take.
	ErrUnexpectedMessage = errors.New("unexpected message kind")
	// ErrMissingKey marks private key material absent from storage.
	ErrMissingKey = errors.New("key material not found")
	// ErrStorage marks a failed read or write against the storage provider.
	ErrStorage = errors.New("storage failure")
)
