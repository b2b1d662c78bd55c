package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	// The current supported version of the sealed record format.
	// Version 1 records used a per-record salt and a zero nonce.
	envelopeFormatVersion = 2
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// sealed record has been modified / corrupted.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted record")
)

// envelope is the JSON structure holding a sealed record and its KDF parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	Nonce  []byte `json:"nonce,omitempty"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// scryptParams are the scrypt cost parameters used when sealing.
type scryptParams struct{ N, r, p int }

// Tunables for scrypt key derivation.
func scryptParamsDefault() scryptParams { return scryptParams{N: 1 << 15, r: 8, p: 1} }

// sealer seals records under a passphrase. scrypt runs once per salt: new
// records share the sealer's salt and differ by a random nonce.
type sealer struct {
	passphrase string
	kdf        scryptParams

	mu   sync.Mutex
	salt []byte
	keys map[string][]byte
}

func newSealer(passphrase string, kdf scryptParams) *sealer {
	return &sealer{passphrase: passphrase, kdf: kdf, keys: make(map[string][]byte)}
}

// key returns the derived key for salt and params, deriving it on first use.
func (s *sealer) key(salt []byte, p scryptParams) ([]byte, error) {
	id := fmt.Sprintf("%x/%d/%d/%d", salt, p.N, p.r, p.p)

	s.mu.Lock()
	defer s.mu.Unlock()
	if k, ok := s.keys[id]; ok {
		return k, nil
	}
	k, err := scrypt.Key([]byte(s.passphrase), salt, p.N, p.r, p.p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	s.keys[id] = k
	return k, nil
}

func (s *sealer) sealingSalt() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.salt == nil {
		salt := make([]byte, 16)
		if _, err := rand.Read(salt); err != nil {
			return nil, err
		}
		s.salt = salt
	}
	return s.salt, nil
}

// seal encrypts raw into a JSON envelope. The record's key space and key are
// bound as associated data so sealed values cannot be swapped between slots.
func (s *sealer) seal(raw, ad []byte) ([]byte, error) {
	salt, err := s.sealingSalt()
	if err != nil {
		return nil, err
	}
	key, err := s.key(salt, s.kdf)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, raw, append(append([]byte{}, salt...), ad...))

	return json.Marshal(envelope{
		V:      envelopeFormatVersion,
		Salt:   salt,
		Nonce:  nonce,
		N:      s.kdf.N,
		R:      s.kdf.r,
		P:      s.kdf.p,
		Cipher: ct,
	})
}

// open decrypts an envelope written by seal, or by the version 1 format.
func (s *sealer) open(b, ad []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, err
	}
	if env.V < 1 || env.V > envelopeFormatVersion {
		return nil, fmt.Errorf("%w: envelope %d", ErrUnsupportedVersion, env.V)
	}

	key, err := s.key(env.Salt, scryptParams{N: env.N, r: env.R, p: env.P})
	if err != nil {
		return nil, err
	}
	var (
		pt   []byte
		aad  = append(append([]byte{}, env.Salt...), ad...)
		oerr error
	)
	switch env.V {
	case 1:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, err
		}
		var nonce [chacha20poly1305.NonceSize]byte
		pt, oerr = aead.Open(nil, nonce[:], env.Cipher, aad)
	default:
		if len(env.Nonce) != chacha20poly1305.NonceSizeX {
			return nil, ErrWrongPassphrase
		}
		aead, err := chacha20poly1305.NewX(key)
		if err != nil {
			return nil, err
		}
		pt, oerr = aead.Open(nil, env.Nonce, env.Cipher, aad)
	}
	if oerr != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
