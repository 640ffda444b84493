package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campussrv/internal/catalogsrv/config"
)

func testInit(t *testing.T) {
	t.Helper()
	t.Setenv("CAMPUS_ADMIN_USERNAME", "admin")
	t.Setenv("CAMPUS_ADMIN_PASSWORD", "secret123")
	t.Setenv("CAMPUS_SESSION_SECRET", "unit-test-secret")
	t.Setenv("CAMPUS_API_SHARED_SECRET", "shared-secret")
	config.TestInit()
}

func TestSessionRoundTrip(t *testing.T) {
	testInit(t)

	expires := time.Now().Add(2 * time.Hour)
	token, err := EncodeSession("admin", expires)
	require.Nil(t, err)
	require.NotEmpty(t, token)

	payload, err := DecodeSession(token)
	require.Nil(t, err)
	assert.Equal(t, "admin", payload.Username)
	assert.WithinDuration(t, expires, payload.Expires, time.Second)
}

func TestDecodeExpiredSession(t *testing.T) {
	testInit(t)

	token, err := EncodeSession("admin", time.Now().Add(-time.Minute))
	require.Nil(t, err)

	_, err = DecodeSession(token)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestDecodeTamperedSession(t *testing.T) {
	testInit(t)

	token, err := EncodeSession("admin", time.Now().Add(time.Hour))
	require.Nil(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = DecodeSession(tampered)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeMalformedSession(t *testing.T) {
	testInit(t)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := DecodeSession(token)
		assert.NotNil(t, err, "token %q", token)
	}
}
