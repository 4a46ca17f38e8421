package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshToken_StoresNewPair(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token/refresh/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "r1", payload["refresh"])

		json.NewEncoder(w).Encode(map[string]string{"access": "a2", "refresh": "r2"})
	}))
	defer server.Close()

	c, store := newTestClient(server.URL)
	store.SetTokens("a1", "r1")

	assert.True(t, c.refreshToken())
	assert.Equal(t, "a2", store.Access())
	assert.Equal(t, "r2", store.Refresh())
}

func TestRefreshToken_KeepsRefreshWithoutRotation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access": "a2"})
	}))
	defer server.Close()

	c, store := newTestClient(server.URL)
	store.SetTokens("a1", "r1")

	assert.True(t, c.refreshToken())
	assert.Equal(t, "a2", store.Access())
	assert.Equal(t, "r1", store.Refresh())
}

func TestRefreshToken_ClearsTokensOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c, store := newTestClient(server.URL)
	store.SetTokens("a1", "r1")

	assert.False(t, c.refreshToken())
	assert.Empty(t, store.Access())
	assert.Empty(t, store.Refresh())
}

func TestRefreshToken_ClearsTokensOnMissingAccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c, store := newTestClient(server.URL)
	store.SetTokens("a1", "r1")

	assert.False(t, c.refreshToken())
	assert.Empty(t, store.Access())
	assert.Empty(t, store.Refresh())
}

func TestRefreshToken_NoStoredTokenMeansNoNetworkCall(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	c, _ := newTestClient(server.URL)

	assert.False(t, c.refreshToken())
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestRefreshToken_CoalescesConcurrentCalls(t *testing.T) {
	var exchanges int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&exchanges, 1)
		time.Sleep(50 * time.Millisecond) // hold the exchange open so callers pile up
		json.NewEncoder(w).Encode(map[string]string{"access": "a2", "refresh": "r2"})
	}))
	defer server.Close()

	c, store := newTestClient(server.URL)
	store.SetTokens("a1", "r1")

	const callers = 8
	results := make([]bool, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.refreshToken()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&exchanges), "concurrent 401s share one exchange")
	for _, ok := range results {
		assert.True(t, ok)
	}
	assert.Equal(t, "a2", store.Access())
}

func TestCallWithRefresh_IgnoresNon401(t *testing.T) {
	c, _ := newTestClient("http://unused")
	called := false

	_, handled, retryErr := callWithRefresh(c, &APIError{StatusCode: 400}, func() (int, error) {
		called = true
		return 0, nil
	})

	assert.False(t, handled)
	assert.NoError(t, retryErr)
	assert.False(t, called)
}

func TestCallWithRefresh_IgnoresTransportErrors(t *testing.T) {
	c, _ := newTestClient("http://unused")
	called := false

	_, handled, _ := callWithRefresh(c, errors.New("connection refused"), func() (int, error) {
		called = true
		return 0, nil
	})

	assert.False(t, handled)
	assert.False(t, called)
}

func TestCallWithRefresh_RetriesOnceAfterSuccessfulRefresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access": "a2"})
	}))
	defer server.Close()

	c, store := newTestClient(server.URL)
	store.SetTokens("stale", "r1")

	calls := 0
	val, handled, retryErr := callWithRefresh(c, &APIError{StatusCode: 401}, func() (int, error) {
		calls++
		return 123, nil
	})

	require.NoError(t, retryErr)
	assert.True(t, handled)
	assert.Equal(t, 123, val)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "a2", store.Access())
}

func TestCallWithRefresh_NoRetryWhenRefreshFails(t *testing.T) {
	c, _ := newTestClient("http://unused") // no refresh token stored
	called := false

	_, handled, retryErr := callWithRefresh(c, &APIError{StatusCode: 401}, func() (int, error) {
		called = true
		return 0, nil
	})

	assert.False(t, handled)
	assert.NoError(t, retryErr)
	assert.False(t, called, "retry thunk must not run without a fresh token")
}

func TestCallWithRefresh_RetryFailurePropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access": "a2"})
	}))
	defer server.Close()

	c, store := newTestClient(server.URL)
	store.SetTokens("stale", "r1")

	calls := 0
	boom := errors.New("still broken")
	_, handled, retryErr := callWithRefresh(c, &APIError{StatusCode: 401}, func() (int, error) {
		calls++
		return 0, boom
	})

	assert.False(t, handled)
	assert.ErrorIs(t, retryErr, boom)
	assert.Equal(t, 1, calls, "no second retry, no backoff")
}
