// Package client is the Go SDK for the resource API: one typed Resource per entity
// with list, get, create, update and delete over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// bearerTransport attaches the session token to every request
type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	req.Header.Set("Accept", "application/json")
	return t.base.RoundTrip(req)
}

// Client talks to the resource API at baseURL. It does not retry; transport
// failures are returned to the caller as is.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*clientOptions)

type clientOptions struct {
	token string
	base  *http.Client
}

// WithToken sends token as the bearer session on every request
func WithToken(token string) Option {
	return func(o *clientOptions) {
		o.token = token
	}
}

// WithHTTPClient uses hc's transport and timeout instead of http.DefaultClient's
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.base = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	o := clientOptions{base: http.DefaultClient}
	for _, opt := range opts {
		opt(&o)
	}

	base := o.base.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport:     &bearerTransport{token: o.token, base: base},
			Timeout:       o.base.Timeout,
			CheckRedirect: o.base.CheckRedirect,
			Jar:           o.base.Jar,
		},
	}
}

func (c *Client) url(path string, values url.Values) string {
	u := c.baseURL + "/api/" + strings.TrimLeft(path, "/")
	if len(values) > 0 {
		u += "?" + values.Encode()
	}
	return u
}

// do sends body as JSON and decodes a 200 response into out. Other statuses
// become an *APIError.
func (c *Client) do(ctx context.Context, method, path string, values url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, values), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
