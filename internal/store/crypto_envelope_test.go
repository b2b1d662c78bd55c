package store

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

var testKDF = scryptParams{N: 1 << 10, r: 8, p: 1}

func TestSealer_DerivesKeyOncePerSalt(t *testing.T) {
	r := require.New(t)
	s := newSealer("pass", testKDF)

	a, err := s.seal([]byte("first"), []byte("ad/1"))
	r.NoError(err)
	b, err := s.seal([]byte("second"), []byte("ad/2"))
	r.NoError(err)
	r.Len(s.keys, 1)

	var ea, eb envelope
	r.NoError(json.Unmarshal(a, &ea))
	r.NoError(json.Unmarshal(b, &eb))
	r.Equal(ea.Salt, eb.Salt)
	r.NotEqual(ea.Nonce, eb.Nonce)

	for i := 0; i < 3; i++ {
		pt, err := s.open(a, []byte("ad/1"))
		r.NoError(err)
		r.Equal([]byte("first"), pt)
	}
	r.Len(s.keys, 1)

	// A fresh sealer derives once for the stored salt and reuses it.
	other := newSealer("pass", testKDF)
	_, err = other.open(a, []byte("ad/1"))
	r.NoError(err)
	_, err = other.open(b, []byte("ad/2"))
	r.NoError(err)
	r.Len(other.keys, 1)
}

func TestSealer_RejectsSwappedSlot(t *testing.T) {
	r := require.New(t)
	s := newSealer("pass", testKDF)

	b, err := s.seal([]byte("secret"), []byte("space/a"))
	r.NoError(err)
	_, err = s.open(b, []byte("space/b"))
	r.ErrorIs(err, ErrWrongPassphrase)
}

func TestSealer_OpensVersionOneRecords(t *testing.T) {
	r := require.New(t)

	salt := make([]byte, 16)
	_, err := rand.Read(salt)
	r.NoError(err)
	key, err := scrypt.Key([]byte("pass"), salt, testKDF.N, testKDF.r, testKDF.p, chacha20poly1305.KeySize)
	r.NoError(err)
	aead, err := chacha20poly1305.New(key)
	r.NoError(err)
	ad := []byte("space/k")
	var nonce [chacha20poly1305.NonceSize]byte
	ct := aead.Seal(nil, nonce[:], []byte("legacy"), append(append([]byte{}, salt...), ad...))

	b, err := json.Marshal(envelope{V: 1, Salt: salt, N: testKDF.N, R: testKDF.r, P: testKDF.p, Cipher: ct})
	r.NoError(err)

	pt, err := newSealer("pass", testKDF).open(b, ad)
	r.NoError(err)
	r.True(bytes.Equal([]byte("legacy"), pt))

	_, err = newSealer("wrong", testKDF).open(b, ad)
	r.ErrorIs(err, ErrWrongPassphrase)

	var bad envelope
	r.NoError(json.Unmarshal(b, &bad))
	bad.V = 9
	b, err = json.Marshal(bad)
	r.NoError(err)
	_, err = newSealer("pass", testKDF).open(b, ad)
	r.ErrorIs(err, ErrUnsupportedVersion)
}
