// Package secrets encrypts sensitive configuration at rest. Banking
// details collected during onboarding must never be stored in plaintext.
package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

var (
	ErrBadKey        = errors.New("encryption key must be 32 bytes of hex")
	ErrBadCiphertext = errors.New("malformed ciphertext")
)

// Box seals and opens small payloads with XChaCha20-Poly1305.
// Ciphertexts are base64 strings carrying the nonce as a prefix, so they
// can live in ordinary TEXT columns.
type Box struct {
	key []byte
}

// NewBox parses a 64-character hex key into a Box.
func NewBox(hexKey string) (*Box, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil || len(key) != chacha20poly1305.KeySize {
		return nil, ErrBadKey
	}
	return &Box{key: key}, nil
}

// Seal encrypts plaintext and returns a base64 ciphertext.
func (b *Box) Seal(plaintext []byte) (string, error) {
	aead, err := chacha20poly1305.NewX(b.key)
	if err != nil {
		return "", fmt.Errorf("failed to build cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a ciphertext produced by Seal.
func (b *Box) Open(ciphertext string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, ErrBadCiphertext
	}

	aead, err := chacha20poly1305.NewX(b.key)
	if err != nil {
		return nil, fmt.Errorf("failed to build cipher: %w", err)
	}

	if len(raw) < aead.NonceSize() {
		return nil, ErrBadCiphertext
	}
	nonce, sealed := raw[:aead.NonceSize()], raw[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}
