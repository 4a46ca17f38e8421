// Package client implements the authenticated API client for the vocabloom
// backend: token lifecycle, transparent retry after a 401 via the refresh
// protocol, and the duplicate classification applied to word and tag writes.
package client

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Client talks to the vocabloom REST backend. It is safe for concurrent use;
// the token store is the only shared mutable state and a single in-flight
// refresh is shared between concurrent 401 recoveries.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  TokenStore
	log     *slog.Logger

	refreshMu  sync.Mutex
	refreshing *refreshCall
}

func New(baseURL string, tokens TokenStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		tokens:  tokens,
		log:     slog.Default(),
	}
}

// SetLogger replaces the logger used for best-effort warning paths.
func (c *Client) SetLogger(log *slog.Logger) {
	if log != nil {
		c.log = log
	}
}

// SetHTTPClient replaces the underlying transport.
func (c *Client) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.client = hc
	}
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + path
}

// authHeaders derives per-request headers from the token store. The bearer
// header is omitted entirely when no access token is stored.
func (c *Client) authHeaders() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if access := c.tokens.Access(); access != "" {
		h.Set("Authorization", "Bearer "+access)
	}
	return h
}

// doJSON issues an authenticated request. Headers are re-read from the token
// store on every call so a retry after refresh picks up the new access token.
func (c *Client) doJSON(method, path string, payload, out any) error {
	return c.send(method, path, payload, out, c.authHeaders())
}

// doPublic issues a request without credentials (login, refresh, register).
func (c *Client) doPublic(method, path string, payload, out any) error {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	return c.send(method, path, payload, out, h)
}

func (c *Client) send(method, path string, payload, out any, headers http.Header) error {
	var body io.Reader = http.NoBody
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, c.url(path), body)
	if err != nil {
		return err
	}
	req.Header = headers

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Body:       raw,
			Message:    extractMessage(raw),
		}
	}

	if out != nil && len(raw) > 0 {
		return json.Unmarshal(raw, out)
	}
	return nil
}
