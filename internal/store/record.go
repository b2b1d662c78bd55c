package store

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// recordVersion is the current framing of stored values.
const recordVersion byte = 1

// ErrUnsupportedVersion is returned for values written by an unknown format.
var ErrUnsupportedVersion = errors.New("unsupported record version")

// EncodeRecord frames v with the current record version.
func EncodeRecord(v []byte) []byte {
	out := make([]byte, 0, len(v)+1)
	out = append(out, recordVersion)
	return append(out, v...)
}

// DecodeRecord strips the record version written by EncodeRecord.
func DecodeRecord(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty record", ErrUnsupportedVersion)
	}
	if b[0] != recordVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, b[0])
	}
	return append([]byte{}, b[1:]...), nil
}

func encodeList(items [][]byte) ([]byte, error) {
	var b cryptobyte.Builder
	for _, it := range items {
		b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(it) })
	}
	return b.Bytes()
}

func decodeList(raw []byte) ([][]byte, error) {
	s := cryptobyte.String(raw)
	out := [][]byte{}
	for !s.Empty() {
		var it cryptobyte.String
		if !readUint32Prefixed(&s, &it) {
			return nil, errors.New("malformed key pair list")
		}
		out = append(out, append([]byte{}, it...))
	}
	return out, nil
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
