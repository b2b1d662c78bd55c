package mlserr

import (
	"errors"
	"fmt"

	"mlsbridge/internal/domain"
)

// Kind is the category of a boundary error.
type Kind uint8

const (
	KindProtocol Kind = iota + 1
	KindInvalidState
	KindMemberNotFound
	KindInvalidMessageType
	KindSerialization
	KindCodec
	KindStorage
	KindCrypto
)

func (k Kind) String() string {
	switch k {
	case KindProtocol:
		return "protocol error"
	case KindInvalidState:
		return "invalid state"
	case KindMemberNotFound:
		return "member not found"
	case KindInvalidMessageType:
		return "invalid message type"
	case KindSerialization:
		return "serialization error"
	case KindCodec:
		return "codec error"
	case KindStorage:
		return "storage error"
	case KindCrypto:
		return "crypto error"
	default:
		return "unknown error"
	}
}

// Error is a categorized failure with a textual message and no cause chain.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Message
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is matching; only the kind is compared.
var (
	ErrProtocol           = &Error{Kind: KindProtocol}
	ErrInvalidState       = &Error{Kind: KindInvalidState}
	ErrMemberNotFound     = &Error{Kind: KindMemberNotFound}
	ErrInvalidMessageType = &Error{Kind: KindInvalidMessageType}
	ErrSerialization      = &Error{Kind: KindSerialization}
	ErrCodec              = &Error{Kind: KindCodec}
	ErrStorage            = &Error{Kind: KindStorage}
	ErrCrypto             = &Error{Kind: KindCrypto}
)

// New returns an *Error of kind k with a formatted message.
func New(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

func Protocol(err error) *Error       { return wrap(KindProtocol, err) }
func Storage(err error) *Error        { return wrap(KindStorage, err) }
func Crypto(err error) *Error         { return wrap(KindCrypto, err) }
func Codec(err error) *Error          { return wrap(KindCodec, err) }
func Serialization(err error) *Error  { return wrap(KindSerialization, err) }
func InvalidState(msg string) *Error  { return &Error{Kind: KindInvalidState, Message: msg} }
func MemberNotFound(id string) *Error { return &Error{Kind: KindMemberNotFound, Message: id} }

// InvalidMessageType reports a message of kind got where want was expected.
func InvalidMessageType(want string, got domain.MessageKind) *Error {
	return New(KindInvalidMessageType, "expected %s, got %s", want, got)
}

func wrap(k Kind, err error) *Error {
	if err == nil {
		return &Error{Kind: k}
	}
	return &Error{Kind: k, Message: err.Error()}
}

// Translate maps an engine failure onto the boundary vocabulary. Errors that
// are already *Error pass through; wrapped domain sentinels pick their kind;
// anything else becomes fallback.
func Translate(err error, fallback Kind) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	switch {
	case errors.Is(err, domain.ErrStorage):
		return wrap(KindStorage, err)
	case errors.Is(err, domain.ErrDecode):
		return wrap(KindCodec, err)
	case errors.Is(err, domain.ErrUnexpectedMessage):
		return wrap(KindInvalidMessageType, err)
	case errors.Is(err, domain.ErrPendingCommit),
		errors.Is(err, domain.ErrNoPendingCommit),
		errors.Is(err, domain.ErrInactive):
		return wrap(KindInvalidState, err)
	case errors.Is(err, domain.ErrUnknownMember):
		return wrap(KindMemberNotFound, err)
	case errors.Is(err, domain.ErrCrypto), errors.Is(err, domain.ErrMissingKey):
		return wrap(KindCrypto, err)
	default:
		return wrap(fallback, err)
	}
}
