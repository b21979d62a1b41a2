package gdrive

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTokenFile(t *testing.T, body string) string {
	p := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadCredentials_MissingFile(t *testing.T) {
	creds, err := LoadCredentials("id", "secret", "http://localhost", filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.False(t, creds.HasToken())
	assert.Equal(t, "id", creds.ClientID)
	assert.Equal(t, "secret", creds.ClientSecret)
	assert.Equal(t, "http://localhost", creds.RedirectURL)
}

func TestLoadCredentials_NoPath(t *testing.T) {
	creds, err := LoadCredentials("id", "secret", "", "")
	require.NoError(t, err)
	assert.False(t, creds.HasToken())
}

func TestLoadCredentials_OAuth2Format(t *testing.T) {
	p := writeTokenFile(t, `{
		"access_token": "ya29.abc",
		"token_type": "Bearer",
		"refresh_token": "1//refresh",
		"expiry": "2026-01-02T03:04:05Z"
	}`)

	creds, err := LoadCredentials("id", "secret", "", p)
	require.NoError(t, err)
	require.True(t, creds.HasToken())
	assert.Equal(t, "ya29.abc", creds.Token.AccessToken)
	assert.Equal(t, "1//refresh", creds.Token.RefreshToken)
	assert.Equal(t, "Bearer", creds.Token.TokenType)
	assert.True(t, creds.Token.Expiry.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestLoadCredentials_NodeFormat(t *testing.T) {
	p := writeTokenFile(t, `{
		"access_token": "ya29.abc",
		"refresh_token": "1//refresh",
		"scope": "https://www.googleapis.com/auth/drive",
		"token_type": "Bearer",
		"expiry_date": 1767323045000
	}`)

	creds, err := LoadCredentials("id", "secret", "", p)
	require.NoError(t, err)
	require.True(t, creds.HasToken())
	assert.Equal(t, int64(1767323045000), creds.Token.Expiry.UnixMilli())
}

func TestLoadCredentials_RefreshOnly(t *testing.T) {
	p := writeTokenFile(t, `{"refresh_token": "1//refresh"}`)

	creds, err := LoadCredentials("id", "secret", "", p)
	require.NoError(t, err)
	assert.True(t, creds.HasToken())
	assert.True(t, creds.Token.Expiry.IsZero())
}

func TestLoadCredentials_Malformed(t *testing.T) {
	for name, body := range map[string]string{
		"not json": "access_token=abc",
		"empty":    `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			p := writeTokenFile(t, body)
			creds, err := LoadCredentials("id", "secret", "", p)
			assert.Error(t, err)
			assert.Nil(t, creds)
		})
	}
}

func TestHasToken_Nil(t *testing.T) {
	var creds *Credentials
	assert.False(t, creds.HasToken())
	assert.False(t, (&Credentials{}).HasToken())
}
