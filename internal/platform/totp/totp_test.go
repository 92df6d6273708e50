package totp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// base32 of the ASCII secret "12345678901234567890" used by the RFC 6238
// test vectors
const testSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestVerify_ReferenceVectors(t *testing.T) {
	// last six digits of the published SHA-1 vectors
	tests := []struct {
		unix int64
		code string
	}{
		{unix: 59, code: "287082"},
		{unix: 1111111109, code: "081804"},
		{unix: 1111111111, code: "050471"},
		{unix: 1234567890, code: "005924"},
		{unix: 2000000000, code: "279037"},
	}

	for _, tt := range tests {
		ok, err := Verify(testSecret, tt.code, time.Unix(tt.unix, 0))
		require.NoError(t, err)
		assert.True(t, ok, "code %s at t=%d", tt.code, tt.unix)
	}
}

func TestVerify_ClockSkew(t *testing.T) {
	// the code for t=59 lives in step 1; one step either side still accepts it
	code := "287082"

	ok, err := Verify(testSecret, code, time.Unix(59+30, 0))
	require.NoError(t, err)
	assert.True(t, ok, "one step late")

	ok, err = Verify(testSecret, code, time.Unix(59-30, 0))
	require.NoError(t, err)
	assert.True(t, ok, "one step early")

	ok, err = Verify(testSecret, code, time.Unix(59+61, 0))
	require.NoError(t, err)
	assert.False(t, ok, "two steps late must be rejected")
}

func TestVerify_Rejects(t *testing.T) {
	now := time.Unix(59, 0)

	tests := []struct {
		name string
		code string
	}{
		{name: "wrong code", code: "000000"},
		{name: "too short", code: "28708"},
		{name: "too long", code: "2870820"},
		{name: "non numeric", code: "28708a"},
		{name: "empty", code: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Verify(testSecret, tt.code, now)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestVerify_BadSecret(t *testing.T) {
	_, err := Verify("not!valid!base32!", "287082", time.Unix(59, 0))
	assert.Error(t, err)
}

func TestVerify_LowercaseSecretAndPadding(t *testing.T) {
	ok, err := Verify("gezdgnbvgy3tqojqgezdgnbvgy3tqojq", "287082", time.Unix(59, 0))
	require.NoError(t, err)
	assert.True(t, ok)
}
