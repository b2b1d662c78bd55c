package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"mlsbridge/internal/domain"
)

// Provider implements domain.CryptoProvider with Ed25519, X25519,
// ChaCha20-Poly1305 and SHA-256. It holds no state.
type Provider struct{}

// NewProvider returns the default crypto provider.
func NewProvider() *Provider { return &Provider{} }

func (*Provider) GenerateSignatureKeyPair() (domain.SignatureKeyPair, error) {
	return GenerateEd25519()
}

func (*Provider) Sign(privateKey, message []byte) ([]byte, error) {
	return SignEd25519(privateKey, message)
}

func (*Provider) Verify(publicKey, message, signature []byte) error {
	if !VerifyEd25519(publicKey, message, signature) {
		return fmt.Errorf("%w: signature verification failed", domain.ErrCrypto)
	}
	return nil
}

func (*Provider) GenerateHPKEKeyPair() (domain.HPKEKeyPair, error) {
	return GenerateX25519()
}

func (*Provider) Seal(recipient, info, aad, plaintext []byte) ([]byte, []byte, error) {
	return SealTo(recipient, info, aad, plaintext)
}

func (*Provider) Open(privateKey, enc, info, aad, ciphertext []byte) ([]byte, error) {
	return OpenFrom(privateKey, enc, info, aad, ciphertext)
}

func (*Provider) AEADSeal(key, nonce, aad, plaintext []byte) ([]byte, error) {
	return AEADSeal(key, nonce, aad, plaintext)
}

func (*Provider) AEADOpen(key, nonce, aad, ciphertext []byte) ([]byte, error) {
	return AEADOpen(key, nonce, aad, ciphertext)
}

func (*Provider) AEADKeySize() int   { return chacha20poly1305.KeySize }
func (*Provider) AEADNonceSize() int { return chacha20poly1305.NonceSize }

func (*Provider) Hash(data []byte) []byte     { return Hash(data) }
func (*Provider) MAC(key, data []byte) []byte { return MAC(key, data) }
func (*Provider) Extract(salt, ikm []byte) []byte {
	return Extract(salt, ikm)
}

func (*Provider) Expand(secret, info []byte, length int) ([]byte, error) {
	return Expand(secret, info, length)
}

func (*Provider) RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
	return b, nil
}

// Compile-time assertion that Provider implements domain.CryptoProvider.
var _ domain.CryptoProvider = (*Provider)(nil)
