package client

import "net/http"

// refreshCall coalesces concurrent refresh attempts: the first 401 performs
// the exchange, later ones wait on done and share the outcome. Without this
// two concurrent 401s would both spend the same refresh token, and under
// backend rotation the second exchange would kill the session.
type refreshCall struct {
	done chan struct{}
	ok   bool
}

// refreshToken exchanges the stored refresh token for a new access token.
// When no refresh token is stored it reports false without a network call.
// A failed exchange clears both tokens: a broken refresh always invalidates
// the session.
func (c *Client) refreshToken() bool {
	c.refreshMu.Lock()
	if call := c.refreshing; call != nil {
		c.refreshMu.Unlock()
		<-call.done
		return call.ok
	}
	call := &refreshCall{done: make(chan struct{})}
	c.refreshing = call
	c.refreshMu.Unlock()

	call.ok = c.exchangeRefreshToken()

	c.refreshMu.Lock()
	c.refreshing = nil
	c.refreshMu.Unlock()
	close(call.done)
	return call.ok
}

func (c *Client) exchangeRefreshToken() bool {
	refresh := c.tokens.Refresh()
	if refresh == "" {
		return false
	}

	var resp struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	err := c.doPublic(http.MethodPost, "token/refresh/", map[string]string{"refresh": refresh}, &resp)
	if err != nil || resp.Access == "" {
		c.tokens.Clear()
		return false
	}

	// Refresh-token rotation is optional; keep the old one unless the
	// backend issued a replacement.
	if resp.Refresh != "" {
		c.tokens.SetTokens(resp.Access, resp.Refresh)
	} else {
		c.tokens.SetTokens(resp.Access, refresh)
	}
	return true
}

// callWithRefresh recovers a single failed request from an expired access
// token. A non-401 failure is not handled here. On a 401 it runs one token
// refresh and, only if that succeeds, invokes retry exactly once. The
// retry's own failure is returned as retryErr; there is no second refresh
// and no backoff.
func callWithRefresh[T any](c *Client, err error, retry func() (T, error)) (val T, handled bool, retryErr error) {
	if statusOf(err) != http.StatusUnauthorized {
		return val, false, nil
	}
	if !c.refreshToken() {
		return val, false, nil
	}
	v, rerr := retry()
	if rerr != nil {
		return val, false, rerr
	}
	return v, true, nil
}
