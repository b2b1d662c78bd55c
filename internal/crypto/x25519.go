package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/curve25519"

	"mlsbridge/internal/domain"
)

// GenerateX25519 returns a fresh Curve25519 key pair.
// The private key is clamped per RFC 7748.
func GenerateX25519() (domain.HPKEKeyPair, error) {
	priv := make([]byte, curve25519.ScalarSize)
	if _, err := rand.Read(priv); err != nil {
		return domain.HPKEKeyPair{}, fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
	clamp(priv)
	pub, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return domain.HPKEKeyPair{}, fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
	return domain.HPKEKeyPair{Private: priv, Public: pub}, nil
}

// DH computes X25519 Diffie–Hellman.
func DH(priv, pub []byte) ([]byte, error) {
	secret, err := curve25519.X25519(priv, pub)
	if err != nil {
		return nil, fmt.Errorf("%w: x25519: %v", domain.ErrCrypto, err)
	}
	return secret, nil
}

func clamp(k []byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}
