package oauth

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// Config carries the OAuth credentials for the upstream account. Leaving every
// field empty is valid and means unauthenticated operation.
type Config struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	RefreshToken string
	TokenURL     string
}

// AuthState wraps an oauth2 token source behind the auth collaborator
// interface. Token refresh happens inside the source on demand; callers only
// ever see the current access token.
type AuthState struct {
	mu     sync.Mutex
	source oauth2.TokenSource
	cfg    Config
}

func New(cfg Config) *AuthState {
	a := &AuthState{cfg: cfg}
	if !a.IsAuthenticated() {
		return a
	}

	if cfg.TokenURL == "" {
		cfg.TokenURL = "https://oauth2.googleapis.com/token"
	}
	oc := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL},
	}
	seed := &oauth2.Token{
		AccessToken:  cfg.AccessToken,
		RefreshToken: cfg.RefreshToken,
		// Unknown issue time; treat a seeded access token as already stale so
		// the first use goes through a refresh when possible.
		Expiry: time.Now().Add(-time.Minute),
	}
	if cfg.RefreshToken == "" {
		// No refresh possible; use the static token as-is.
		seed.Expiry = time.Time{}
		a.source = oauth2.StaticTokenSource(seed)
		return a
	}
	a.source = oc.TokenSource(context.Background(), seed)
	return a
}

// IsAuthenticated reports whether credentials were configured at all.
func (a *AuthState) IsAuthenticated() bool {
	return a.cfg.AccessToken != "" || a.cfg.RefreshToken != ""
}

// AccessToken returns a currently valid access token, refreshing when needed.
func (a *AuthState) AccessToken(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.source == nil {
		return "", errors.New("not authenticated")
	}
	token, err := a.source.Token()
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}
