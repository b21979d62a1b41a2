package gdrive

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"golang.org/x/oauth2"
)

// Credentials is everything needed to talk to Drive on behalf of a user.
// Token is nil when no token file was found.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Token        *oauth2.Token
}

func (c *Credentials) HasToken() bool {
	return c != nil && c.Token != nil && (c.Token.AccessToken != "" || c.Token.RefreshToken != "")
}

// tokenJSON covers both the oauth2.Token encoding and the googleapis node
// client encoding, which stores the expiry as epoch milliseconds.
type tokenJSON struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	Expiry       time.Time `json:"expiry"`
	ExpiryDate   int64     `json:"expiry_date"`
}

// LoadCredentials reads the token file at tokenPath. A missing file is not an
// error: the returned credentials simply carry no token.
func LoadCredentials(clientID, clientSecret, redirectURL, tokenPath string) (*Credentials, error) {
	creds := &Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
	}
	if tokenPath == "" {
		return creds, nil
	}
	token, err := getTokenFromFile(tokenPath)
	if err != nil {
		return nil, err
	}
	creds.Token = token
	return creds, nil
}

func getTokenFromFile(tokenPath string) (*oauth2.Token, error) {
	b, err := os.ReadFile(tokenPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token file %s: %w", tokenPath, err)
	}
	return ParseToken(b)
}

// ParseToken decodes a token file body.
func ParseToken(b []byte) (*oauth2.Token, error) {
	var raw tokenJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	if raw.AccessToken == "" && raw.RefreshToken == "" {
		return nil, errors.New("decode token: no access or refresh token")
	}
	token := &oauth2.Token{
		AccessToken:  raw.AccessToken,
		RefreshToken: raw.RefreshToken,
		TokenType:    raw.TokenType,
		Expiry:       raw.Expiry,
	}
	if token.Expiry.IsZero() && raw.ExpiryDate > 0 {
		token.Expiry = time.UnixMilli(raw.ExpiryDate)
	}
	return token, nil
}
