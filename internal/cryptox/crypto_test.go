package cryptox

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	expectedHex := "9290403300158e19f27e48e7087f7383b03065bf5b25ef23ebc40229616cd8b3"
	if hex.EncodeToString(key1) != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, hex.EncodeToString(key1))
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"))
	key2 := DeriveKey(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestMakeVerifier_Length(t *testing.T) {
	v := MakeVerifier([]byte("key"))
	assert.Len(t, v, 32)
}

func TestVerify(t *testing.T) {
	salt := NewSalt()
	require.Len(t, salt, SaltSize)

	stored := MakeVerifier(DeriveKey([]byte("pw"), salt))

	assert.True(t, Verify([]byte("pw"), salt, stored))
	assert.False(t, Verify([]byte("wrong"), salt, stored))
	assert.False(t, Verify([]byte("pw"), NewSalt(), stored))
}
