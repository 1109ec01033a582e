// Package backend is the typed client for the remote CupCakeMC service. The
// backend owns all business state; this client only moves it over the wire.
// Operations are HTTP POST /rpc/<name> with JSON bodies, attributed to the
// caller via the bearer token carried in the request context.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/caffeinepub/cupcakemc/external/identity"
)

type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient reads BACKEND_URL and builds a client with a practical request
// timeout. Reads do not need their own deadline (staleness substitutes for
// liveness) but mutations must not hang forever.
func NewClient() (*Client, error) {
	base := os.Getenv("BACKEND_URL")
	if base == "" {
		return nil, errors.New("BACKEND_URL not set")
	}
	return &Client{
		baseURL: base,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

// NewClientWithBase is used by tests to point at an httptest server.
func NewClientWithBase(base string) *Client {
	return &Client{
		baseURL: base,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) call(ctx context.Context, op string, params any, out any) error {
	var body io.Reader
	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("%s: encode params: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rpc/"+op, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := identity.TokenFromContext(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		e := &Error{Op: op, Status: resp.StatusCode}
		var remote struct {
			Error string `json:"error"`
		}
		if derr := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&remote); derr == nil {
			e.Message = remote.Error
		}
		return e
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
