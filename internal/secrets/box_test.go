package secrets

import (
	"strings"
	"testing"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestBoxRoundTrip(t *testing.T) {
	box, err := NewBox(testKey)
	if err != nil {
		t.Fatalf("NewBox failed: %v", err)
	}

	plaintext := []byte(`{"bankName":"Banco do Brasil","accountNumber":"123456"}`)
	sealed, err := box.Seal(plaintext)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if strings.Contains(sealed, "Banco") {
		t.Error("ciphertext leaks plaintext")
	}

	opened, err := box.Open(sealed)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if string(opened) != string(plaintext) {
		t.Errorf("round trip = %q, want %q", opened, plaintext)
	}
}

func TestBoxNonceVaries(t *testing.T) {
	box, _ := NewBox(testKey)

	a, _ := box.Seal([]byte("same"))
	b, _ := box.Seal([]byte("same"))
	if a == b {
		t.Error("two seals of the same plaintext produced identical ciphertexts")
	}
}

func TestNewBoxRejectsBadKeys(t *testing.T) {
	for _, key := range []string{"", "abcd", "zz" + testKey[2:], testKey + "00"} {
		if _, err := NewBox(key); err == nil {
			t.Errorf("NewBox(%q) accepted a bad key", key)
		}
	}
}

func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	box, _ := NewBox(testKey)

	if _, err := box.Open("not base64!!"); err == nil {
		t.Error("Open accepted invalid base64")
	}
	if _, err := box.Open("c2hvcnQ="); err == nil {
		t.Error("Open accepted a ciphertext shorter than the nonce")
	}

	sealed, _ := box.Seal([]byte("payload"))
	tampered := "A" + sealed[1:]
	if tampered == sealed {
		tampered = "B" + sealed[1:]
	}
	if _, err := box.Open(tampered); err == nil {
		t.Error("Open accepted a tampered ciphertext")
	}
}
