package types

import (
	"encoding/json"
	"strings"
)

// SignatureKeyPair is a member's long-term signing key pair.
type SignatureKeyPair struct {
	Private []byte `json:"private"`
	Public  []byte `json:"public"`
}

// Encode returns the stored form of the key pair.
func (k SignatureKeyPair) Encode() ([]byte, error) { return json.Marshal(k) }

// DecodeSignatureKeyPair parses the stored form produced by Encode.
func DecodeSignatureKeyPair(b []byte) (SignatureKeyPair, error) {
	var k SignatureKeyPair
	if err := json.Unmarshal(b, &k); err != nil {
		return SignatureKeyPair{}, err
	}
	return k, nil
}

// HPKEKeyPair is a key pair secrets can be sealed to (init keys, leaf keys).
type HPKEKeyPair struct {
	Private []byte `json:"private"`
	Public  []byte `json:"public"`
}

// Encode returns the stored form of the key pair.
func (k HPKEKeyPair) Encode() ([]byte, error) { return json.Marshal(k) }

// DecodeHPKEKeyPair parses the stored form produced by Encode.
func DecodeHPKEKeyPair(b []byte) (HPKEKeyPair, error) {
	var k HPKEKeyPair
	if err := json.Unmarshal(b, &k); err != nil {
		return HPKEKeyPair{}, err
	}
	return k, nil
}

// Credential is a basic credential: raw identity bytes bound to the
// signature public key that speaks for them.
type Credential struct {
	Identity     []byte `json:"identity"`
	SignatureKey []byte `json:"signature_key"`
}

// Text returns the identity as text. Invalid UTF-8 is replaced rather than
// rejected so that any credential can be matched against a display id.
func (c Credential) Text() string {
	return strings.ToValidUTF8(string(c.Identity), "�")
}
