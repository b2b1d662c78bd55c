package crypto

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"

	"mlsbridge/internal/domain"
)

// SealTo encrypts plaintext to an X25519 public key. A fresh ephemeral key
// is generated per call; enc is its public half and must travel with the
// ciphertext.
func SealTo(recipient, info, aad, plaintext []byte) (enc, ciphertext []byte, err error) {
	eph, err := GenerateX25519()
	if err != nil {
		return nil, nil, err
	}
	defer Wipe(eph.Private)

	shared, err := DH(eph.Private, recipient)
	if err != nil {
		return nil, nil, err
	}
	defer Wipe(shared)

	key, nonce, err := sealKey(shared, eph.Public, recipient, info)
	if err != nil {
		return nil, nil, err
	}
	defer Wipe(key)

	ct, err := AEADSeal(key, nonce, aad, plaintext)
	if err != nil {
		return nil, nil, err
	}
	return eph.Public, ct, nil
}

// OpenFrom reverses SealTo using the recipient's private key.
func OpenFrom(privateKey, enc, info, aad, ciphertext []byte) ([]byte, error) {
	shared, err := DH(privateKey, enc)
	if err != nil {
		return nil, err
	}
	defer Wipe(shared)

	pub, err := DH(privateKey, curve25519.Basepoint)
	if err != nil {
		return nil, err
	}
	key, nonce, err := sealKey(shared, enc, pub, info)
	if err != nil {
		return nil, err
	}
	defer Wipe(key)

	return AEADOpen(key, nonce, aad, ciphertext)
}

// AEADSeal seals with ChaCha20-Poly1305.
func AEADSeal(key, nonce, aad, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: bad nonce size %d", domain.ErrCrypto, len(nonce))
	}
	return aead.Seal(nil, nonce, plaintext, aad), nil
}

// AEADOpen opens a ChaCha20-Poly1305 ciphertext.
func AEADOpen(key, nonce, aad, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: bad nonce size %d", domain.ErrCrypto, len(nonce))
	}
	pt, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("%w: aead open: %v", domain.ErrCrypto, err)
	}
	return pt, nil
}

// sealKey binds the derived key to both public keys and the caller's info.
func sealKey(shared, enc, recipient, info []byte) (key, nonce []byte, err error) {
	ctx := make([]byte, 0, len(enc)+len(recipient)+len(info))
	ctx = append(ctx, enc...)
	ctx = append(ctx, recipient...)
	ctx = append(ctx, info...)

	prk := Extract(nil, shared)
	defer Wipe(prk)
	okm, err := Expand(prk, labeled("hpke", ctx), chacha20poly1305.KeySize+chacha20poly1305.NonceSize)
	if err != nil {
		return nil, nil, err
	}
	return okm[:chacha20poly1305.KeySize], okm[chacha20poly1305.KeySize:], nil
}
