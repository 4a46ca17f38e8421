// Package dictionary looks up word definitions from the public dictionary
// API and optionally caches the normalized result in a local sqlite file.
package dictionary

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aigerimdev/vocabloom-cli/internal/client"
)

// DefaultBaseURL is the free dictionary API's English entries endpoint.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

type Client struct {
	baseURL string
	client  *http.Client
	cache   *Cache
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// WithCache enables the local lookup cache.
func (c *Client) WithCache(cache *Cache) *Client {
	c.cache = cache
	return c
}

// dictionaryapi.dev already speaks the camel-cased meaning shape.
type entry struct {
	Word      string `json:"word"`
	Phonetic  string `json:"phonetic"`
	Phonetics []struct {
		Audio string `json:"audio"`
	} `json:"phonetics"`
	Meanings []client.Meaning `json:"meanings"`
}

// Lookup fetches a word's dictionary entry, normalized to the Word shape:
// first entry wins, the first non-empty pronunciation audio is kept. Cached
// results are served without a network call.
func (c *Client) Lookup(term string) (*client.Word, error) {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return nil, fmt.Errorf("term must be non-empty")
	}

	if c.cache != nil {
		if word, ok := c.cache.Get(term); ok {
			return word, nil
		}
	}

	resp, err := c.client.Get(c.baseURL + "/" + url.PathEscape(term))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("no dictionary entry for %q", term)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("dictionary lookup failed: %s", string(body))
	}

	var entries []entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no dictionary entry for %q", term)
	}

	first := entries[0]
	word := &client.Word{
		Word:     first.Word,
		Phonetic: first.Phonetic,
		Meanings: first.Meanings,
	}
	for _, p := range first.Phonetics {
		if p.Audio != "" {
			word.Audio = p.Audio
			break
		}
	}

	if c.cache != nil {
		if err := c.cache.Put(term, word); err != nil {
			return word, nil // lookup succeeded; a cold cache is not an error
		}
	}
	return word, nil
}
