// Package cryptox implements the small crypto surface the key lifecycle
// needs: passphrase key derivation, AMK wrapping, and verifiers. The format
// of the wrapped blob is nonce || ciphertext (AES-256-GCM).
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// ErrDecrypt is returned when a wrapped key cannot be opened, which for
// AES-GCM means either a wrong KEK (wrong passphrase) or corrupted data.
var ErrDecrypt = errors.New("decrypt failed")

// MakeVerifier returns a value safe to store server-side for password
// verification: a hash of the derived key, never the key itself.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// DeriveKek derives a 32-byte key-encryption key from a passphrase and salt
// using argon2id.
func DeriveKek(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, 32)
}

// WrapKey encrypts the AMK under the given KEK. A fresh random nonce is
// generated per call and prepended to the ciphertext.
func WrapKey(amk []byte, kek []byte) ([]byte, error) {
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, fmt.Errorf("cipher init: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("gcm init: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, amk, nil), nil
}

// UnwrapKey decrypts a blob produced by WrapKey. Returns ErrDecrypt if the
// KEK is wrong or the blob is damaged.
func UnwrapKey(wrapped []byte, kek []byte) ([]byte, error) {
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, fmt.Errorf("cipher init: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("gcm init: %w", err)
	}

	if len(wrapped) < gcm.NonceSize() {
		return nil, ErrDecrypt
	}
	nonce, ciphertext := wrapped[:gcm.NonceSize()], wrapped[gcm.NonceSize():]

	amk, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	return amk, nil
}
