// Package gauth provides OAuth2 credential acquisition shared by every Google
// service the application talks to: Gmail (read-only), Calendar, and Vertex AI.
//
// Credentials come from an installed-app credentials.json plus a cached
// token.json. Token refresh is handled transparently by the oauth2 token
// source; the cached token is rewritten when it changes.
package gauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	gmail "google.golang.org/api/gmail/v1"
)

// Scopes covers all Google services used by the application.
var Scopes = []string{
	calendar.CalendarScope,
	gmail.GmailReadonlyScope,
	"https://www.googleapis.com/auth/cloud-platform",
}

// Config locates the OAuth client secrets and the cached user token.
type Config struct {
	CredentialsPath string // installed-app client secrets (credentials.json)
	TokenPath       string // cached user token (token.json)
}

// OAuthConfig loads the installed-app OAuth2 configuration from
// CredentialsPath.
func OAuthConfig(cfg Config) (*oauth2.Config, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, newError("read credentials", fmt.Errorf("credentials file %q not found: %w", cfg.CredentialsPath, err))
	}

	conf, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, newError("parse credentials", err)
	}
	return conf, nil
}

// TokenSource returns a self-refreshing token source backed by the cached
// token. It fails with a typed auth error when no usable token exists;
// run the auth flow to create one.
func TokenSource(ctx context.Context, cfg Config) (oauth2.TokenSource, error) {
	conf, err := OAuthConfig(cfg)
	if err != nil {
		return nil, err
	}

	tok, err := loadToken(cfg.TokenPath)
	if err != nil {
		return nil, newError("load token", fmt.Errorf("no valid token at %q (run the auth flow first): %w", cfg.TokenPath, err))
	}

	return oauth2.ReuseTokenSource(tok, conf.TokenSource(ctx, tok)), nil
}

// HTTPClient returns an authenticated HTTP client for Google API services.
func HTTPClient(ctx context.Context, cfg Config) (*http.Client, error) {
	ts, err := TokenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, ts), nil
}

// Exchange trades an authorization code for a token and caches it at
// cfg.TokenPath.
func Exchange(ctx context.Context, cfg Config, authCode string) (*oauth2.Token, error) {
	conf, err := OAuthConfig(cfg)
	if err != nil {
		return nil, err
	}

	tok, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return nil, newError("exchange code", err)
	}

	if err := SaveToken(cfg.TokenPath, tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// SaveToken writes the token to path with user-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return newError("encode token", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return newError("write token", err)
	}
	return nil
}

func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, err
	}
	if tok.AccessToken == "" && tok.RefreshToken == "" {
		return nil, errors.New("token file contains no usable token")
	}
	return &tok, nil
}
