package client

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Login exchanges credentials for a token pair and stores it. A definitive
// rejection returns ErrInvalidCredentials; other failures carry the backend's
// detail message when one was provided.
func (c *Client) Login(username, password string) error {
	payload := map[string]string{
		"username": username,
		"password": password,
	}

	var resp struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := c.doPublic(http.MethodPost, "token/", payload, &resp); err != nil {
		if statusOf(err) == http.StatusUnauthorized {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("login failed: %w", err)
	}

	if resp.Access == "" {
		return errors.New("login failed: no access token in response")
	}
	c.tokens.SetTokens(resp.Access, resp.Refresh)
	return nil
}

// Register creates a new account. No token side effects.
func (c *Client) Register(username, email, password, firstName, lastName string) (*RegisteredUser, error) {
	payload := map[string]string{
		"username":   username,
		"email":      email,
		"password":   password,
		"first_name": firstName,
		"last_name":  lastName,
	}

	var user RegisteredUser
	if err := c.doPublic(http.MethodPost, "register_user/", payload, &user); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return &user, nil
}

// IsAuthenticated probes the authenticated ping endpoint. A 401 gets the
// usual one-shot refresh and retry; every other failure reports false.
func (c *Client) IsAuthenticated() bool {
	probe := func() (struct{}, error) {
		return struct{}{}, c.doJSON(http.MethodPost, "authenticated/", struct{}{}, nil)
	}

	if _, err := probe(); err != nil {
		_, ok, _ := callWithRefresh(c, err, probe)
		return ok
	}
	return true
}

// Logout tells the backend to drop the session and clears the stored tokens.
// The local clear happens regardless of whether the server call succeeded,
// so Logout always reports true.
func (c *Client) Logout() bool {
	if err := c.doJSON(http.MethodPost, "logout/", struct{}{}, nil); err != nil {
		c.log.Warn("server-side logout failed", "error", err)
	}
	c.tokens.Clear()
	return true
}

// TokenClaims is the subset of access-token claims shown by whoami.
type TokenClaims struct {
	UserID    int
	Username  string
	TokenType string
	ExpiresAt time.Time
}

// Whoami decodes the stored access token without verifying its signature.
// The backend remains the authority on validity; this only surfaces what the
// client is holding.
func (c *Client) Whoami() (*TokenClaims, error) {
	access := c.tokens.Access()
	if access == "" {
		return nil, errors.New("not logged in")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return nil, fmt.Errorf("stored access token is not a valid JWT: %w", err)
	}

	out := &TokenClaims{}
	if v, ok := claims["user_id"].(float64); ok {
		out.UserID = int(v)
	}
	if v, ok := claims["username"].(string); ok {
		out.Username = v
	}
	if v, ok := claims["token_type"].(string); ok {
		out.TokenType = v
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
