// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides durable per-key local state for the chatpaat TUI.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/chatpaat-tui/internal/util"
)

// =============================================================================
// WELL-KNOWN KEYS
// =============================================================================

// Keys persisted by the application. Each key is an independent record;
// there is no single state document.
const (
	KeyUser           = "user"
	KeyAccessToken    = "access_token"
	KeyRefreshToken   = "refresh_token"
	KeyTheme          = "theme"
	KeyAccentColor    = "accentColor"
	KeyHighContrast   = "highContrast"
	KeyWarmPalette    = "warmPalette"
	KeyFontSize       = "fontSize"
	KeyMessageDensity = "messageDensity"
	KeyAutoScroll     = "autoScroll"
	KeyNotifications  = "notifications"
	KeySoundEnabled   = "soundEnabled"
	KeyCompactSidebar = "compactSidebar"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// =============================================================================
// STORE
// =============================================================================

// Store persists one file per key under a base directory. Writes are
// synchronous whole-record replaces; reads of corrupt values behave as if
// the key were absent. The zero ordering guarantee mirrors browser
// localStorage, which this replaces.
type Store struct {
	// BaseDir is the directory holding one file per key.
	// Default: ~/.chatpaat/state/
	BaseDir string

	keystore *Keystore
}

// New creates a store rooted at the default state directory.
func New() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewWithDir(filepath.Join(homeDir, ".chatpaat", "state"))
}

// NewWithDir creates a store rooted at dir, creating it if needed.
func NewWithDir(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	ks, err := openKeystore(dir)
	if err != nil {
		return nil, err
	}
	return &Store{BaseDir: dir, keystore: ks}, nil
}

// path maps a key to its backing file. Keys are restricted to a safe
// character set so a hostile key cannot escape the base directory.
func (s *Store) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_' || r == '-':
			return r
		}
		return '_'
	}, key)
	return filepath.Join(s.BaseDir, safe+".json")
}

// =============================================================================
// PLAIN VALUES
// =============================================================================

// SetString stores a raw string value under key.
func (s *Store) SetString(key, value string) error {
	return util.AtomicWriteFile(s.path(key), []byte(value), 0600)
}

// GetString returns the raw string stored under key, or ErrNotFound.
func (s *Store) GetString(key string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(data), nil
}

// SetBool stores a boolean under key as "true"/"false".
func (s *Store) SetBool(key string, value bool) error {
	if value {
		return s.SetString(key, "true")
	}
	return s.SetString(key, "false")
}

// GetBool returns the boolean stored under key. Missing or malformed
// values return fallback.
func (s *Store) GetBool(key string, fallback bool) bool {
	v, err := s.GetString(key)
	if err != nil {
		return fallback
	}
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	return fallback
}

// SetJSON stores v under key as JSON.
func (s *Store) SetJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.path(key), data, 0600)
}

// GetJSON decodes the JSON stored under key into v. A corrupt record reads
// as absent: the caller sees ErrNotFound, never a decode error, because a
// half-written preference must not wedge startup.
func (s *Store) GetJSON(key string, v any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return ErrNotFound
	}
	return nil
}

// =============================================================================
// SECRET VALUES
// =============================================================================

// SetSecret stores value under key encrypted at rest.
func (s *Store) SetSecret(key, value string) error {
	enc, err := s.keystore.Encrypt(value)
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.path(key), []byte(enc), 0600)
}

// GetSecret returns the decrypted value stored under key. Undecryptable
// records (e.g. the key file was rotated) read as absent so the user is
// simply signed out rather than shown an error.
func (s *Store) GetSecret(key string) (string, error) {
	raw, err := s.GetString(key)
	if err != nil {
		return "", err
	}
	plain, err := s.keystore.Decrypt(raw)
	if err != nil {
		return "", ErrNotFound
	}
	return plain, nil
}

// =============================================================================
// REMOVAL
// =============================================================================

// Delete removes the record for key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// DeleteAll removes every listed key. Used by sign-out to clear the
// session atomically from the caller's point of view.
func (s *Store) DeleteAll(keys ...string) error {
	var firstErr error
	for _, k := range keys {
		if err := s.Delete(k); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
