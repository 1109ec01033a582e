// Package qrserver renders arbitrary data as a QR code PNG via the public
// qrserver.com image endpoint.
package qrserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultBaseURL = "https://api.qrserver.com"

// maxImageBytes bounds how much of the response we are willing to buffer.
const maxImageBytes = 1 << 20

type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient honors QRSERVER_URL for overrides, otherwise uses the public API.
func NewClient() *Client {
	base := os.Getenv("QRSERVER_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL: base,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientWithBase is used by tests.
func NewClientWithBase(base string) *Client {
	return &Client{baseURL: base, client: &http.Client{Timeout: 10 * time.Second}}
}

// Generate returns the PNG bytes of a size x size QR code encoding data.
func (c *Client) Generate(ctx context.Context, data string, size int) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/v1/create-qr-code/?size=%dx%d&data=%s",
		c.baseURL, size, size, url.QueryEscape(data))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, errors.New("qrserver: unexpected status " + resp.Status)
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, io.LimitReader(resp.Body, maxImageBytes)); err != nil {
		return nil, err
	}
	if buf.Len() == 0 {
		return nil, errors.New("qrserver: empty image response")
	}
	return buf.Bytes(), nil
}
