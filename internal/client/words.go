package client

import (
	"fmt"
	"net/http"
)

// Words lists the saved collection. List reads never fail outward: on
// unrecoverable errors they log and fall back to an empty slice, so callers
// need no error-vs-no-data branching.
func (c *Client) Words() []Word {
	return c.listWords("words/")
}

// SavedWords is the collection read under its historical name; the backend
// serves both from the same words resource.
func (c *Client) SavedWords() []Word {
	return c.Words()
}

func (c *Client) listWords(path string) []Word {
	fetch := func() ([]Word, error) {
		var wire []wireWord
		if err := c.doJSON(http.MethodGet, path, nil, &wire); err != nil {
			return nil, err
		}
		words := make([]Word, 0, len(wire))
		for _, w := range wire {
			words = append(words, w.toWord())
		}
		return words, nil
	}

	words, err := fetch()
	if err == nil {
		return words
	}
	if retried, ok, rerr := callWithRefresh(c, err, fetch); ok {
		return retried
	} else if rerr != nil {
		err = rerr
	}
	c.log.Warn("listing words failed", "path", path, "error", err)
	return []Word{}
}

// Word fetches a single word by id, nil when it cannot be retrieved.
func (c *Client) Word(id int) *Word {
	fetch := func() (*Word, error) {
		var wire wireWord
		if err := c.doJSON(http.MethodGet, fmt.Sprintf("words/%d/", id), nil, &wire); err != nil {
			return nil, err
		}
		w := wire.toWord()
		return &w, nil
	}

	word, err := fetch()
	if err == nil {
		return word
	}
	if retried, ok, rerr := callWithRefresh(c, err, fetch); ok {
		return retried
	} else if rerr != nil {
		err = rerr
	}
	c.log.Warn("fetching word failed", "id", id, "error", err)
	return nil
}

// SaveWord adds a word to the collection. The request body carries the
// capitalized wire form; the backend's echo is normalized back. A conflict
// surfaces as ErrWordDuplicate and is never retried via refresh.
func (c *Client) SaveWord(word Word) (*Word, error) {
	payload := toWirePayload(word)
	attempt := func() (*Word, error) {
		var saved wireWord
		if err := c.doJSON(http.MethodPost, "words/", payload, &saved); err != nil {
			return nil, err
		}
		w := saved.toWord()
		return &w, nil
	}

	saved, err := attempt()
	if err == nil {
		return saved, nil
	}
	if dup := classifyDuplicate(err, kindWord); dup != nil {
		return nil, dup
	}
	if retried, ok, rerr := callWithRefresh(c, err, attempt); ok {
		return retried, nil
	} else if rerr != nil {
		return nil, fmt.Errorf("saving word failed: %w", rerr)
	}
	if statusOf(err) == http.StatusUnauthorized {
		return nil, ErrSessionExpired
	}
	return nil, fmt.Errorf("saving word failed: %w", err)
}

// UpdateWordNote replaces the personal note on a word.
func (c *Client) UpdateWordNote(id int, note string) (*Word, error) {
	attempt := func() (*Word, error) {
		var updated wireWord
		err := c.doJSON(http.MethodPatch, fmt.Sprintf("words/%d/", id), map[string]string{"note": note}, &updated)
		if err != nil {
			return nil, err
		}
		w := updated.toWord()
		return &w, nil
	}

	updated, err := attempt()
	if err == nil {
		return updated, nil
	}
	if retried, ok, rerr := callWithRefresh(c, err, attempt); ok {
		return retried, nil
	} else if rerr != nil {
		return nil, fmt.Errorf("updating note failed: %w", rerr)
	}
	if statusOf(err) == http.StatusUnauthorized {
		return nil, ErrSessionExpired
	}
	return nil, fmt.Errorf("updating note failed: %w", err)
}

// DeleteWord removes a word, reporting plain success.
func (c *Client) DeleteWord(id int) bool {
	return c.delete(fmt.Sprintf("words/%d/", id))
}

func (c *Client) delete(path string) bool {
	attempt := func() (struct{}, error) {
		return struct{}{}, c.doJSON(http.MethodDelete, path, nil, nil)
	}

	_, err := attempt()
	if err == nil {
		return true
	}
	if _, ok, rerr := callWithRefresh(c, err, attempt); ok {
		return true
	} else if rerr != nil {
		err = rerr
	}
	c.log.Warn("delete failed", "path", path, "error", err)
	return false
}
