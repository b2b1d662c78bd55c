package interfaces

import domaintypes "mlsbridge/internal/domain/types"

// CryptoProvider supplies the primitives engines build on. A provider is
// owned by one client and shared read-only with the sessions it derives.
type CryptoProvider interface {
	GenerateSignatureKeyPair() (domaintypes.SignatureKeyPair, error)
	Sign(privateKey, message []byte) ([]byte, error)
	Verify(publicKey, message, signature []byte) error

	GenerateHPKEKeyPair() (domaintypes.HPKEKeyPair, error)
	Seal(recipient, info, aad, plaintext []byte) (enc, ciphertext []byte, err error)
	Open(privateKey, enc, info, aad, ciphertext []byte) ([]byte, error)

	AEADSeal(key, nonce, aad, plaintext []byte) ([]byte, error)
	AEADOpen(key, nonce, aad, ciphertext []byte) ([]byte, error)
	AEADKeySize() int
	AEADNonceSize() int

	Hash(data []byte) []byte
	MAC(key, data []byte) []byte
	Extract(salt, ikm []byte) []byte
	Expand(secret, info []byte, length int) ([]byte, error)
	RandomBytes(n int) ([]byte, error)
}
