// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides durable per-key local state for the chatpaat TUI.
//
// This file implements at-rest encryption for the bearer tokens:
// AES-256-GCM with a PBKDF2-SHA-256 derived key. The master secret is a
// random per-machine file next to the state directory, so tokens on disk
// are unreadable when copied to another machine.
package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// EncryptedPrefix marks a value as encrypted (format: ENC:base64(salt|nonce|ciphertext)).
const EncryptedPrefix = "ENC:"

const (
	masterKeyFile = ".master_key"
	saltSize      = 16
	nonceSize     = 12
	keySize       = 32
	pbkdf2Iters   = 10_000
)

var (
	ErrNotEncrypted  = errors.New("value is not encrypted")
	ErrDecryptFailed = errors.New("decryption failed")
)

// Keystore derives per-value encryption keys from a machine-local master
// secret.
type Keystore struct {
	master []byte
}

// openKeystore loads or creates the master secret in dir.
func openKeystore(dir string) (*Keystore, error) {
	path := filepath.Join(dir, masterKeyFile)

	master, err := os.ReadFile(path)
	if err == nil && len(master) == keySize {
		return &Keystore{master: master}, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	// First run (or truncated key file): mint a fresh master secret.
	master = make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, master); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, master, 0600); err != nil {
		return nil, err
	}
	return &Keystore{master: master}, nil
}

// Encrypt seals plaintext and returns the ENC:-prefixed encoding.
func (k *Keystore) Encrypt(plaintext string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	gcm, err := k.aead(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	buf := make([]byte, 0, saltSize+nonceSize+len(sealed))
	buf = append(buf, salt...)
	buf = append(buf, nonce...)
	buf = append(buf, sealed...)

	return EncryptedPrefix + base64.StdEncoding.EncodeToString(buf), nil
}

// Decrypt opens an ENC:-prefixed value.
func (k *Keystore) Decrypt(value string) (string, error) {
	if !strings.HasPrefix(value, EncryptedPrefix) {
		return "", ErrNotEncrypted
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, EncryptedPrefix))
	if err != nil {
		return "", ErrDecryptFailed
	}
	if len(raw) < saltSize+nonceSize {
		return "", ErrDecryptFailed
	}

	salt := raw[:saltSize]
	nonce := raw[saltSize : saltSize+nonceSize]
	sealed := raw[saltSize+nonceSize:]

	gcm, err := k.aead(salt)
	if err != nil {
		return "", ErrDecryptFailed
	}

	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecryptFailed
	}
	return string(plain), nil
}

// aead builds the AES-256-GCM cipher for a given salt.
func (k *Keystore) aead(salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key(k.master, salt, pbkdf2Iters, keySize, sha256.New)
	defer zeroBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// zeroBytes clears key material after use.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
