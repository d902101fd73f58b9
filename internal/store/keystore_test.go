// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestKeystore(t *testing.T) (*Keystore, string) {
	t.Helper()
	dir := t.TempDir()
	ks, err := openKeystore(dir)
	require.NoError(t, err)
	return ks, dir
}

func TestKeystore_RoundTrip(t *testing.T) {
	ks, _ := newTestKeystore(t)

	sealed, err := ks.Encrypt("bearer-token-value")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(sealed, EncryptedPrefix), "sealed value should carry the ENC: prefix")
	require.NotContains(t, sealed, "bearer-token-value", "plaintext must not appear in the sealed value")

	plain, err := ks.Decrypt(sealed)
	require.NoError(t, err)
	require.Equal(t, "bearer-token-value", plain)
}

func TestKeystore_EncryptIsNonDeterministic(t *testing.T) {
	ks, _ := newTestKeystore(t)

	a, err := ks.Encrypt("same input")
	require.NoError(t, err)
	b, err := ks.Encrypt("same input")
	require.NoError(t, err)
	require.NotEqual(t, a, b, "fresh salt and nonce should differ per encryption")
}

func TestKeystore_DecryptRejectsPlaintext(t *testing.T) {
	ks, _ := newTestKeystore(t)

	_, err := ks.Decrypt("not sealed at all")
	require.ErrorIs(t, err, ErrNotEncrypted)
}

func TestKeystore_DecryptRejectsTampering(t *testing.T) {
	ks, _ := newTestKeystore(t)

	sealed, err := ks.Encrypt("secret")
	require.NoError(t, err)

	// Flip one character of the payload.
	tampered := []byte(sealed)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}
	_, err = ks.Decrypt(string(tampered))
	require.Error(t, err)
}

func TestKeystore_MasterKeyPersistsAcrossOpens(t *testing.T) {
	ks, dir := newTestKeystore(t)

	sealed, err := ks.Encrypt("survives reopen")
	require.NoError(t, err)

	reopened, err := openKeystore(dir)
	require.NoError(t, err)
	plain, err := reopened.Decrypt(sealed)
	require.NoError(t, err)
	require.Equal(t, "survives reopen", plain)
}

func TestKeystore_DifferentMachineCannotDecrypt(t *testing.T) {
	ks, _ := newTestKeystore(t)
	other, _ := newTestKeystore(t)

	sealed, err := ks.Encrypt("machine bound")
	require.NoError(t, err)
	_, err = other.Decrypt(sealed)
	require.Error(t, err, "a different master secret must not decrypt the value")
}

func TestKeystore_TruncatedKeyFileIsReplaced(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, masterKeyFile), []byte("short"), 0600))

	ks, err := openKeystore(dir)
	require.NoError(t, err)

	sealed, err := ks.Encrypt("works after repair")
	require.NoError(t, err)
	plain, err := ks.Decrypt(sealed)
	require.NoError(t, err)
	require.Equal(t, "works after repair", plain)
}
