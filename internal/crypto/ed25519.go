package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"mlsbridge/internal/domain"
)

// GenerateEd25519 returns a new Ed25519 signing key pair.
func GenerateEd25519() (domain.SignatureKeyPair, error) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return domain.SignatureKeyPair{}, fmt.Errorf("%w: ed25519 keygen: %v", domain.ErrCrypto, err)
	}
	return domain.SignatureKeyPair{Private: sk, Public: pk}, nil
}

// SignEd25519 signs msg with priv and returns the signature.
func SignEd25519(priv, msg []byte) ([]byte, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: bad ed25519 private key size %d", domain.ErrCrypto, len(priv))
	}
	return ed25519.Sign(ed25519.PrivateKey(priv), msg), nil
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub, msg, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), msg, sig)
}
