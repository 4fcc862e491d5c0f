// Package encryption seals the browser identifier cookie with AES-256-GCM.
// The cookie name is bound as additional data, so a token minted for one
// cookie does not open under another.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// MinKeyLength is the minimum length of the key material in bytes.
const MinKeyLength = 32

var (
	ErrInvalidKeyLength = errors.New("cookie key must be at least 32 bytes")
	ErrSealFailed       = errors.New("seal operation failed")
	ErrOpenFailed       = errors.New("open operation failed")
	ErrInvalidToken     = errors.New("invalid token: too short or malformed")
)

// Sealer seals and opens cookie values.
type Sealer struct {
	key  []byte
	aead cipher.AEAD
}

// NewSealer derives an AES-256 key from keyMaterial with SHA-256.
func NewSealer(keyMaterial []byte) (*Sealer, error) {
	if len(keyMaterial) < MinKeyLength {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrInvalidKeyLength, len(keyMaterial), MinKeyLength)
	}

	sum := sha256.Sum256(keyMaterial)
	key := sum[:]

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Sealer{key: key, aead: aead}, nil
}

// Seal encrypts value for the cookie called name. The token is URL-safe
// base64 of nonce followed by ciphertext.
func (s *Sealer) Seal(name, value string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: failed to generate nonce: %v", ErrSealFailed, err)
	}

	sealed := s.aead.Seal(nonce, nonce, []byte(value), []byte(name))
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal. It fails if the token was tampered with or was sealed
// for a different cookie name.
func (s *Sealer) Open(name, token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64: %v", ErrOpenFailed, err)
	}

	nonceSize := s.aead.NonceSize()
	if len(raw) < nonceSize+s.aead.Overhead() {
		return "", ErrInvalidToken
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, []byte(name))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	return string(plaintext), nil
}
