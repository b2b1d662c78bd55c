package boundary

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"

	"mlsbridge/internal/domain"
	"mlsbridge/internal/mlserr"
)

const (
	commitTag     = 0x01
	ciphertextTag = 0x02
)

var errTrailing = errors.New("trailing bytes")

// MarshalCommit returns the binary form of c.
func MarshalCommit(c domain.Commit) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddUint8(commitTag)
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(c.Commit) })
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, w := range c.Welcome {
			b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(w) })
		}
	})
	out, err := b.Bytes()
	if err != nil {
		return nil, mlserr.Serialization(err)
	}
	return out, nil
}

// UnmarshalCommit parses the output of MarshalCommit.
func UnmarshalCommit(data []byte) (domain.Commit, error) {
	s := cryptobyte.String(data)
	var (
		tag      uint8
		commit   cryptobyte.String
		welcomes cryptobyte.String
	)
	if !s.ReadUint8(&tag) || tag != commitTag ||
		!readUint32Prefixed(&s, &commit) ||
		!readUint32Prefixed(&s, &welcomes) {
		return domain.Commit{}, mlserr.New(mlserr.KindSerialization, "malformed commit")
	}
	if !s.Empty() {
		return domain.Commit{}, mlserr.Serialization(errTrailing)
	}
	out := domain.Commit{Commit: clone(commit), Welcome: [][]byte{}}
	for !welcomes.Empty() {
		var w cryptobyte.String
		if !readUint32Prefixed(&welcomes, &w) {
			return domain.Commit{}, mlserr.New(mlserr.KindSerialization, "malformed welcome list")
		}
		out.Welcome = append(out.Welcome, clone(w))
	}
	return out, nil
}

// MarshalCiphertext returns the binary form of c.
func MarshalCiphertext(c domain.Ciphertext) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddUint8(ciphertextTag)
	b.AddUint64(c.Epoch)
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(c.Data) })
	out, err := b.Bytes()
	if err != nil {
		return nil, mlserr.Serialization(err)
	}
	return out, nil
}

// UnmarshalCiphertext parses the output of MarshalCiphertext.
func UnmarshalCiphertext(data []byte) (domain.Ciphertext, error) {
	s := cryptobyte.String(data)
	var (
		tag   uint8
		epoch uint64
		body  cryptobyte.String
	)
	if !s.ReadUint8(&tag) || tag != ciphertextTag ||
		!s.ReadUint64(&epoch) ||
		!readUint32Prefixed(&s, &body) {
		return domain.Ciphertext{}, mlserr.New(mlserr.KindSerialization, "malformed ciphertext")
	}
	if !s.Empty() {
		return domain.Ciphertext{}, mlserr.Serialization(errTrailing)
	}
	return domain.Ciphertext{Data: clone(body), Epoch: epoch}, nil
}

// MarshalJSON renders a boundary value (Commit, Ciphertext, GroupInfo) as
// JSON, reporting failures as serialization errors.
func MarshalJSON(v any) ([]byte, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return nil, mlserr.Serialization(err)
	}
	return out, nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func UnmarshalJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return mlserr.Serialization(fmt.Errorf("decode %T: %w", v, err))
	}
	return nil
}

func clone(s cryptobyte.String) []byte {
	return append([]byte{}, s...)
}

// readUint32Prefixed reads a uint32 length-prefixed vector into out.
// cryptobyte only provides the 8, 16 and 24 bit variants on String.
func readUint32Prefixed(s, out *cryptobyte.String) bool {
	var n uint32
	var b []byte
	if !s.ReadUint32(&n) || !s.ReadBytes(&b, int(n)) {
		return false
	}
	*out = b
	return true
}
