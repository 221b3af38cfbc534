package innertube

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/erievs/FourthTube/domain/repository"
	"github.com/erievs/FourthTube/infrastructure/logger"

	"github.com/tidwall/gjson"
)

// Transport issues one HTTP request. Retry, backoff and timeout policy belong
// to whoever constructs the client; this layer only reacts to outcomes.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config carries the upstream contract knobs. Everything that may drift when
// the upstream changes lives here or in templates.go.
type Config struct {
	APIBase   string
	Language  string
	Region    string
	UserAgent string
	// MaxConcurrent bounds multi-page fetches. Values below 2 fetch serially.
	MaxConcurrent int
}

// Client talks to the upstream browse API and turns its responses into domain
// structs. Safe for concurrent use.
type Client struct {
	cfg       Config
	transport Transport
	auth      repository.IAuthState
}

// New creates a client. auth may be nil, in which case every request runs with
// the unauthenticated profile. transport defaults to an http.Client.
func New(cfg Config, transport Transport, auth repository.IAuthState) *Client {
	if transport == nil {
		transport = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.APIBase == "" {
		cfg.APIBase = "https://www.youtube.com/youtubei/v1"
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.Region == "" {
		cfg.Region = "US"
	}
	if cfg.MaxConcurrent == 0 {
		cfg.MaxConcurrent = 8
	}
	return &Client{cfg: cfg, transport: transport, auth: auth}
}

func (c *Client) authenticated() bool {
	return c.auth != nil && c.auth.IsAuthenticated()
}

// bearerToken returns the access token when authenticated, "" otherwise.
// Fetching the token is also what triggers a refresh in the auth collaborator.
func (c *Client) bearerToken(ctx context.Context) string {
	if !c.authenticated() {
		return ""
	}
	token, err := c.auth.AccessToken(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("access token unavailable, falling back to unauthenticated request")
		return ""
	}
	return token
}

// browse POSTs a request body to the browse endpoint and returns the parsed
// response. Transport failures, non-2xx statuses and malformed JSON are all
// protocol failures for the caller.
func (c *Client) browse(ctx context.Context, body []byte, bearer string) (gjson.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIBase+"/browse", bytes.NewReader(body))
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.transport.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("browse request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return gjson.Result{}, fmt.Errorf("browse request failed: %s (%s)", resp.Status, string(snippet))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("browse response read failed: %w", err)
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fmt.Errorf("browse response is not valid JSON")
	}
	return gjson.ParseBytes(raw), nil
}
