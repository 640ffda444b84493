package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"2h", 2 * time.Hour, false},
		{"30m", 30 * time.Minute, false},
		{"1d", 24 * time.Hour, false},
		{"1y", 365 * 24 * time.Hour, false},
		{"", 0, true},
		{"h", 0, true},
		{"2x", 0, true},
		{"xh", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDuration(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			assert.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.expected, got, "input %q", tt.input)
		}
	}
}

func writeTestConf(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "campussrv.conf")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

const validConf = `
format_version = "0.1.0"
server_port = "3000"

[session]
expiration_time = "2h"

[db]
host = "localhost"
port = 5432
dbname = "campussrv"
user = "campussrv"
sslmode = "disable"
`

func setTestSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("CAMPUS_SESSION_SECRET", "secret")
	t.Setenv("CAMPUS_ADMIN_USERNAME", "admin")
	t.Setenv("CAMPUS_ADMIN_PASSWORD", "hunter2")
	t.Setenv("CAMPUS_API_SHARED_SECRET", "shared")
	t.Setenv("CAMPUS_DB_PASSWORD", "pg")
}

func TestLoadConfig(t *testing.T) {
	setTestSecrets(t)
	path := writeTestConf(t, validConf)

	require.NoError(t, LoadConfig(path))
	c := Config()
	require.NotNil(t, c)

	assert.Equal(t, "3000", c.ServerPort)
	assert.Equal(t, 2*time.Hour, c.Session.GetExpirationTimeOrDefault())
	assert.Equal(t, "session", c.Session.CookieName)
	assert.Equal(t, "admin", c.Auth.AdminUsername)
	assert.Equal(t, "shared", c.Auth.APISharedSecret)

	// Plaintext admin password must not be retained.
	err := bcrypt.CompareHashAndPassword(c.Auth.AdminPasswordHash, []byte("hunter2"))
	assert.NoError(t, err)

	// Defaults
	assert.Equal(t, int64(2<<20), c.MaxRequestBodySize)
	assert.Equal(t, "/uploads/courses", c.Upload.PublicPrefix)
	assert.Equal(t, []string{"8.8.8.8:53", "1.1.1.1:53"}, c.DB.DNSFallbackServers)
	assert.Contains(t, c.DSN(), "dbname=campussrv")
	assert.Contains(t, c.DSN(), "password=pg")
}

func TestLoadConfigMissingSecrets(t *testing.T) {
	setTestSecrets(t)
	t.Setenv("CAMPUS_SESSION_SECRET", "")
	path := writeTestConf(t, validConf)

	err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CAMPUS_SESSION_SECRET")
}

func TestLoadConfigBadVersion(t *testing.T) {
	setTestSecrets(t)
	path := writeTestConf(t, `
format_version = "9.9.9"
server_port = "3000"

[session]
expiration_time = "2h"

[db]
host = "localhost"
port = 5432
dbname = "campussrv"
user = "campussrv"
sslmode = "disable"
`)

	err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format version")
}
