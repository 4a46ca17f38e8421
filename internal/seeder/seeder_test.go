package seeder

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigerimdev/vocabloom-cli/internal/client"
)

type fakeBackend struct {
	mu        sync.Mutex
	tagNames  map[string]int
	wordTexts map[string]int
	nextID    int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		tagNames:  make(map[string]int),
		wordTexts: make(map[string]int),
		nextID:    1,
	}
}

func (b *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/tags/":
			var body struct {
				Name string `json:"name"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			if _, exists := b.tagNames[body.Name]; exists {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(map[string]string{"detail": "tag already exists"})
				return
			}
			id := b.nextID
			b.nextID++
			b.tagNames[body.Name] = id
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"id": id, "name": body.Name})

		case r.Method == http.MethodPost && r.URL.Path == "/words/":
			var body struct {
				Word string `json:"word"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			if _, exists := b.wordTexts[body.Word]; exists {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(map[string]string{"detail": "word already exists"})
				return
			}
			id := b.nextID
			b.nextID++
			b.wordTexts[body.Word] = id
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"id": id, "word": body.Word})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newSeededClient(t *testing.T) (*client.Client, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	store := client.NewMemoryTokenStore()
	store.SetTokens("a1", "r1")
	return client.New(server.URL, store), backend
}

func TestRun_CreatesTagsAndWords(t *testing.T) {
	c, backend := newSeededClient(t)

	stats, err := New(c, nil).Run(5, 2)
	require.NoError(t, err)

	// gofakeit can repeat nouns or words; duplicates are skipped, never lost.
	assert.Equal(t, stats.TagsCreated, len(backend.tagNames))
	assert.Equal(t, stats.WordsCreated, len(backend.wordTexts))
	assert.Equal(t, 7, stats.TagsCreated+stats.WordsCreated+stats.Duplicates)
	assert.LessOrEqual(t, stats.TagsCreated, 2)
	assert.LessOrEqual(t, stats.WordsCreated, 5)
}

func TestRun_ZeroCounts(t *testing.T) {
	c, backend := newSeededClient(t)

	stats, err := New(c, nil).Run(0, 0)
	require.NoError(t, err)
	assert.Zero(t, stats.TagsCreated)
	assert.Zero(t, stats.WordsCreated)
	assert.Zero(t, stats.Duplicates)
	assert.Empty(t, backend.tagNames)
}

func TestRun_StopsOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"detail": "boom"})
	}))
	defer server.Close()

	store := client.NewMemoryTokenStore()
	store.SetTokens("a1", "r1")
	c := client.New(server.URL, store)

	_, err := New(c, nil).Run(1, 1)
	assert.Error(t, err)
}
