package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestKeyPair_RoundTrip(t *testing.T) {
	svc := NewKeyPairService()

	kp, err := svc.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}
	if kp.PublicKey == "" || kp.PrivateKey == "" {
		t.Fatal("expected both keys to be non-empty")
	}

	// Scenario: encrypt a short payload with own public key, decrypt with
	// own private key.
	ct, err := svc.EncryptWithPublicKey("topsecret", kp.PublicKey)
	if err != nil {
		t.Fatalf("EncryptWithPublicKey error: %v", err)
	}

	pt, err := svc.DecryptWithPrivateKey(ct, kp.PrivateKey)
	if err != nil {
		t.Fatalf("DecryptWithPrivateKey error: %v", err)
	}
	if pt != "topsecret" {
		t.Fatalf("round trip mismatch: got %q, want %q", pt, "topsecret")
	}
}

func TestKeyPair_WrongPrivateKeyFails(t *testing.T) {
	svc := NewKeyPairService()

	alice, err := svc.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}
	bob, err := svc.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	ct, err := svc.EncryptWithPublicKey("one-time key material", alice.PublicKey)
	if err != nil {
		t.Fatalf("EncryptWithPublicKey error: %v", err)
	}

	if _, err := svc.DecryptWithPrivateKey(ct, bob.PrivateKey); !errors.Is(err, ErrUnwrap) {
		t.Fatalf("decrypt with wrong private key: got %v, want ErrUnwrap", err)
	}
}

func TestKeyPair_GeneratesDistinctKeys(t *testing.T) {
	svc := NewKeyPairService()

	kp1, err := svc.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}
	kp2, err := svc.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	if kp1.PublicKey == kp2.PublicKey || kp1.PrivateKey == kp2.PrivateKey {
		t.Fatal("two generated keypairs must differ")
	}
}

func TestKeyPair_OversizePayloadRejected(t *testing.T) {
	svc := NewKeyPairService()

	kp, err := svc.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	// Vault-sized data must never go through RSA directly.
	big := strings.Repeat("x", oaepCeiling+1)
	if _, err := svc.EncryptWithPublicKey(big, kp.PublicKey); !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("oversize payload: got %v, want ErrPayloadTooLarge", err)
	}
}

func TestKeyPair_MalformedKeysRejected(t *testing.T) {
	svc := NewKeyPairService()

	if _, err := svc.EncryptWithPublicKey("x", "%%% not a key"); !errors.Is(err, ErrMalformedKey) {
		t.Fatalf("malformed public key: got %v, want ErrMalformedKey", err)
	}
	if _, err := svc.DecryptWithPrivateKey("YWJj", "%%% not a key"); !errors.Is(err, ErrMalformedKey) {
		t.Fatalf("malformed private key: got %v, want ErrMalformedKey", err)
	}
}

func TestKeyPair_TamperedCiphertextFails(t *testing.T) {
	svc := NewKeyPairService()

	kp, err := svc.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	ct, err := svc.EncryptWithPublicKey("payload", kp.PublicKey)
	if err != nil {
		t.Fatalf("EncryptWithPublicKey error: %v", err)
	}

	tampered := "AAAA" + ct[4:]
	if tampered == ct {
		t.Skip("tampering produced identical ciphertext")
	}
	if _, err := svc.DecryptWithPrivateKey(tampered, kp.PrivateKey); !errors.Is(err, ErrUnwrap) {
		t.Fatalf("tampered ciphertext: got %v, want ErrUnwrap", err)
	}
}
