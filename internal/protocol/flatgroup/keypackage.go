package flatgroup

import (
	"golang.org/x/crypto/cryptobyte"
)

type keyPackage struct {
	identity  []byte
	sigKey    []byte
	initKey   []byte
	signature []byte
}

func (kp *keyPackage) addTBS(b *cryptobyte.Builder) {
	b.AddUint16(protocolVersion)
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(kp.identity) })
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(kp.sigKey) })
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(kp.initKey) })
}

func (kp *keyPackage) tbs() ([]byte, error) {
	return build(kp.addTBS)
}

func (kp *keyPackage) marshal() ([]byte, error) {
	body, err := build(func(b *cryptobyte.Builder) {
		kp.addTBS(b)
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(kp.signature) })
	})
	if err != nil {
		return nil, err
	}
	return frame(wireKeyPackage, body)
}

func parseKeyPackage(raw []byte) (*keyPackage, error) {
	wt, s, err := unframe(raw)
	if err != nil {
		return nil, err
	}
	if wt != wireKeyPackage {
		return nil, decodeErr("not a key package")
	}
	var (
		version                         uint16
		identity, sigKey, initKey, sig cryptobyte.String
	)
	if !s.ReadUint16(&version) || version != protocolVersion ||
		!s.ReadUint16LengthPrefixed(&identity) ||
		!s.ReadUint8LengthPrefixed(&sigKey) ||
		!s.ReadUint8LengthPrefixed(&initKey) ||
		!s.ReadUint16LengthPrefixed(&sig) || !s.Empty() {
		return nil, decodeErr("key package")
	}
	return &keyPackage{
		identity:  clone(identity),
		sigKey:    clone(sigKey),
		initKey:   clone(initKey),
		signature: clone(sig),
	}, nil
}
