// Package identity is the adapter for the external login provider. It
// exchanges an authorization code for an authenticated identity and carries
// the backend bearer token through request contexts. Logout is local: the
// session cookie and cache are cleared by the caller.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Identity is an authenticated principal. A zero Identity is anonymous.
type Identity struct {
	Principal string    `json:"principal"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (id Identity) IsAnonymous() bool { return id.Principal == "" }

type Provider struct {
	baseURL     string
	clientID    string
	redirectURI string
	client      *http.Client
}

// NewProvider reads IDENTITY_PROVIDER_URL, IDENTITY_CLIENT_ID and
// IDENTITY_REDIRECT_URI.
func NewProvider() (*Provider, error) {
	base := os.Getenv("IDENTITY_PROVIDER_URL")
	if base == "" {
		return nil, errors.New("IDENTITY_PROVIDER_URL not set")
	}
	clientID := os.Getenv("IDENTITY_CLIENT_ID")
	if clientID == "" {
		return nil, errors.New("IDENTITY_CLIENT_ID not set")
	}
	return &Provider{
		baseURL:     base,
		clientID:    clientID,
		redirectURI: os.Getenv("IDENTITY_REDIRECT_URI"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// NewProviderWithBase is used by tests.
func NewProviderWithBase(base, clientID, redirectURI string) *Provider {
	return &Provider{
		baseURL:     base,
		clientID:    clientID,
		redirectURI: redirectURI,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// BeginLogin returns the provider URL the browser is redirected to. The state
// value must be echoed back on the callback.
func (p *Provider) BeginLogin(state string) string {
	q := url.Values{}
	q.Set("client_id", p.clientID)
	q.Set("redirect_uri", p.redirectURI)
	q.Set("state", state)
	return p.baseURL + "/authorize?" + q.Encode()
}

type tokenRequest struct {
	ClientID    string `json:"client_id"`
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

// CompleteLogin exchanges the callback code for an authenticated identity.
// It suspends until the provider answers or the request times out.
func (p *Provider) CompleteLogin(ctx context.Context, code string) (Identity, error) {
	body, _ := json.Marshal(tokenRequest{
		ClientID:    p.clientID,
		Code:        code,
		RedirectURI: p.redirectURI,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/token", bytes.NewReader(body))
	if err != nil {
		return Identity{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Identity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(io.LimitReader(resp.Body, 4096))
		return Identity{}, errors.New("identity: login failed: " + buf.String())
	}

	var id Identity
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return Identity{}, err
	}
	if id.IsAnonymous() || id.Token == "" {
		return Identity{}, errors.New("identity: provider returned an anonymous identity")
	}
	return id, nil
}
