// Package secret seals small credentials (the backend session, a pasted
// token) at rest with AES-256-GCM under a machine-local key file.
package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/term"
)

const (
	keyFileName    = ".linkr_key"
	keyIterations  = 4096
	derivedKeySize = 32 // AES-256
)

var (
	// ErrDecryptionFailed is returned when decryption fails
	ErrDecryptionFailed = errors.New("decryption failed: invalid ciphertext or key")

	// ErrEncryptionFailed is returned when encryption fails
	ErrEncryptionFailed = errors.New("encryption failed")
)

// Keeper seals and opens credentials using a key file stored in dir.
type Keeper struct {
	dir string
}

// NewKeeper creates a keeper rooted at the given directory.
func NewKeeper(dir string) *Keeper {
	return &Keeper{dir: dir}
}

// Seal encrypts a credential. The purpose string binds the ciphertext to
// its use (e.g. "session:https://hub.acme.io") so values cannot be swapped
// between slots.
func (k *Keeper) Seal(plaintext, purpose string) ([]byte, error) {
	aesGCM, err := k.cipherFor(purpose)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	return aesGCM.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

// Open decrypts a credential sealed with the same purpose.
func (k *Keeper) Open(ciphertext []byte, purpose string) (string, error) {
	aesGCM, err := k.cipherFor(purpose)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", ErrDecryptionFailed
	}

	nonce, body := ciphertext[:nonceSize], ciphertext[nonceSize:]

	plaintext, err := aesGCM.Open(nil, nonce, body, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

func (k *Keeper) cipherFor(purpose string) (cipher.AEAD, error) {
	masterKey, err := k.getOrCreateKey()
	if err != nil {
		return nil, err
	}

	key := pbkdf2.Key(masterKey, []byte(purpose), keyIterations, derivedKeySize, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

// getOrCreateKey reads the machine-local master key, generating one on
// first use.
func (k *Keeper) getOrCreateKey() ([]byte, error) {
	keyPath := filepath.Join(k.dir, keyFileName)

	keyHex, err := os.ReadFile(keyPath)
	if err == nil {
		key, decodeErr := hex.DecodeString(string(keyHex))
		if decodeErr == nil && len(key) == derivedKeySize {
			return key, nil
		}
	}

	key := make([]byte, derivedKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("failed to generate encryption key: %w", err)
	}

	if err := os.MkdirAll(k.dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(keyPath, []byte(hex.EncodeToString(key)), 0600); err != nil {
		return nil, fmt.Errorf("failed to save encryption key: %w", err)
	}

	return key, nil
}

// PromptForSecret prompts the user for a secret without echoing it.
func PromptForSecret(prompt string) (string, error) {
	_, _ = fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())

	byteSecret, err := term.ReadPassword(fd)

	_, _ = fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", err
	}

	return string(byteSecret), nil
}
