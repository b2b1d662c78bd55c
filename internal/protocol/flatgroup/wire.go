package flatgroup

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/cryptobyte"

	"mlsbridge/internal/domain"
)

const protocolVersion uint16 = 1

type wireType uint8

const (
	wirePublic     wireType = 1
	wirePrivate    wireType = 2
	wireWelcome    wireType = 3
	wireGroupInfo  wireType = 4
	wireKeyPackage wireType = 5
)

// Content types carried in public messages.
const (
	contentProposal uint8 = 2
	contentCommit   uint8 = 3
)

const labelPrefix = "mlsbridge flatgroup "

func decodeErr(what string) error {
	return fmt.Errorf("%w: %s", domain.ErrDecode, what)
}

func build(f func(b *cryptobyte.Builder)) ([]byte, error) {
	var b cryptobyte.Builder
	f(&b)
	out, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return out, nil
}

func frame(wt wireType, body []byte) ([]byte, error) {
	return build(func(b *cryptobyte.Builder) {
		b.AddUint16(protocolVersion)
		b.AddUint8(uint8(wt))
		b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(body) })
	})
}

func unframe(raw []byte) (wireType, cryptobyte.String, error) {
	s := cryptobyte.String(raw)
	var (
		version uint16
		wt      uint8
		body    cryptobyte.String
	)
	if !s.ReadUint16(&version) || !s.ReadUint8(&wt) ||
		!readUint32Prefixed(&s, &body) || !s.Empty() {
		return 0, nil, decodeErr("message framing")
	}
	if version != protocolVersion {
		return 0, nil, fmt.Errorf("%w: unsupported protocol version %d", domain.ErrDecode, version)
	}
	return wireType(wt), body, nil
}

func framePublic(content uint8, body []byte) ([]byte, error) {
	inner, err := build(func(b *cryptobyte.Builder) {
		b.AddUint8(content)
		b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(body) })
	})
	if err != nil {
		return nil, err
	}
	return frame(wirePublic, inner)
}

func readPublic(s cryptobyte.String) (uint8, cryptobyte.String, error) {
	var (
		content uint8
		body    cryptobyte.String
	)
	if !s.ReadUint8(&content) || !readUint32Prefixed(&s, &body) || !s.Empty() {
		return 0, nil, decodeErr("public message")
	}
	return content, body, nil
}

// classify maps a framed message to its kind without verifying anything.
func classify(raw []byte) (domain.MessageKind, error) {
	wt, body, err := unframe(raw)
	if err != nil {
		return domain.KindUnknown, err
	}
	switch wt {
	case wirePublic:
		content, _, err := readPublic(body)
		if err != nil {
			return domain.KindUnknown, err
		}
		switch content {
		case contentProposal:
			return domain.KindProposal, nil
		case contentCommit:
			return domain.KindCommit, nil
		}
		return domain.KindUnknown, fmt.Errorf("%w: content type %d", domain.ErrDecode, content)
	case wirePrivate:
		return domain.KindApplication, nil
	case wireWelcome:
		return domain.KindWelcome, nil
	case wireGroupInfo:
		return domain.KindExternalJoin, nil
	case wireKeyPackage:
		return domain.KindKeyPackage, nil
	default:
		return domain.KindUnknown, fmt.Errorf("%w: wire type %d", domain.ErrDecode, wt)
	}
}

func label(name string, parts ...[]byte) []byte {
	out := []byte(labelPrefix + name)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func u32(v uint32) []byte { return binary.BigEndian.AppendUint32(nil, v) }
func u64(v uint64) []byte { return binary.BigEndian.AppendUint64(nil, v) }

func clone(s []byte) []byte { return append([]byte{}, s...) }

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
