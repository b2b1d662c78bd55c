package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"mlsbridge/internal/crypto"
	"mlsbridge/internal/domain"
)

func TestEd25519_SignVerify(t *testing.T) {
	kp, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	sig, err := crypto.SignEd25519(kp.Private, []byte("hello"))
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	if !crypto.VerifyEd25519(kp.Public, []byte("hello"), sig) {
		t.Fatal("signature did not verify")
	}
	if crypto.VerifyEd25519(kp.Public, []byte("hellO"), sig) {
		t.Fatal("signature verified over a different message")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	kp, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	enc, ct, err := crypto.SealTo(kp.Public, []byte("info"), []byte("aad"), []byte("secret"))
	if err != nil {
		t.Fatalf("SealTo: %v", err)
	}
	pt, err := crypto.OpenFrom(kp.Private, enc, []byte("info"), []byte("aad"), ct)
	if err != nil {
		t.Fatalf("OpenFrom: %v", err)
	}
	if string(pt) != "secret" {
		t.Fatalf("got %q, want %q", pt, "secret")
	}
}

func TestOpen_WrongKeyFails(t *testing.T) {
	a, _ := crypto.GenerateX25519()
	b, _ := crypto.GenerateX25519()
	enc, ct, err := crypto.SealTo(a.Public, nil, nil, []byte("secret"))
	if err != nil {
		t.Fatalf("SealTo: %v", err)
	}
	if _, err := crypto.OpenFrom(b.Private, enc, nil, nil, ct); !errors.Is(err, domain.ErrCrypto) {
		t.Fatalf("got %v, want ErrCrypto", err)
	}
}

func TestOpen_InfoMismatchFails(t *testing.T) {
	kp, _ := crypto.GenerateX25519()
	enc, ct, err := crypto.SealTo(kp.Public, []byte("one"), nil, []byte("secret"))
	if err != nil {
		t.Fatalf("SealTo: %v", err)
	}
	if _, err := crypto.OpenFrom(kp.Private, enc, []byte("two"), nil, ct); err == nil {
		t.Fatal("expected failure with mismatched info")
	}
}

func TestProvider_VerifyRejectsTampered(t *testing.T) {
	p := crypto.NewProvider()
	kp, err := p.GenerateSignatureKeyPair()
	if err != nil {
		t.Fatalf("GenerateSignatureKeyPair: %v", err)
	}
	sig, err := p.Sign(kp.Private, []byte("m"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig[0] ^= 1
	if err := p.Verify(kp.Public, []byte("m"), sig); !errors.Is(err, domain.ErrCrypto) {
		t.Fatalf("got %v, want ErrCrypto", err)
	}
}

func TestExpand_Deterministic(t *testing.T) {
	prk := crypto.Extract([]byte("salt"), []byte("ikm"))
	a, err := crypto.Expand(prk, []byte("x"), 42)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	b, _ := crypto.Expand(prk, []byte("x"), 42)
	c, _ := crypto.Expand(prk, []byte("y"), 42)
	if !bytes.Equal(a, b) || len(a) != 42 {
		t.Fatal("expand is not deterministic")
	}
	if bytes.Equal(a, c) {
		t.Fatal("different info produced the same output")
	}
}

func TestFingerprint_Length(t *testing.T) {
	fp := crypto.Fingerprint([]byte("public key"))
	if len(fp) != 20 {
		t.Fatalf("fingerprint length %d, want 20", len(fp))
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	crypto.Wipe(b)
	if !bytes.Equal(b, []byte{0, 0, 0}) {
		t.Fatalf("not wiped: %v", b)
	}
}
