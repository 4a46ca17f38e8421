package client

import (
	"fmt"
	"net/http"
)

// DefaultDifficulty is used when GenerateOptions leaves Difficulty empty.
const DefaultDifficulty = "intermediate"

// UserExamples lists the personal example sentences of a word, empty on
// unrecoverable failure.
func (c *Client) UserExamples(wordID int) []UserExample {
	fetch := func() ([]UserExample, error) {
		var examples []UserExample
		err := c.doJSON(http.MethodGet, fmt.Sprintf("words/%d/examples/", wordID), nil, &examples)
		if err != nil {
			return nil, err
		}
		return examples, nil
	}

	examples, err := fetch()
	if err == nil {
		return examples
	}
	if retried, ok, rerr := callWithRefresh(c, err, fetch); ok {
		return retried
	} else if rerr != nil {
		err = rerr
	}
	c.log.Warn("listing examples failed", "word_id", wordID, "error", err)
	return []UserExample{}
}

// UserExample fetches one example, nil when it cannot be retrieved.
func (c *Client) UserExample(wordID, exampleID int) *UserExample {
	fetch := func() (*UserExample, error) {
		var example UserExample
		err := c.doJSON(http.MethodGet, fmt.Sprintf("words/%d/examples/%d/", wordID, exampleID), nil, &example)
		if err != nil {
			return nil, err
		}
		return &example, nil
	}

	example, err := fetch()
	if err == nil {
		return example
	}
	if retried, ok, rerr := callWithRefresh(c, err, fetch); ok {
		return retried
	} else if rerr != nil {
		err = rerr
	}
	c.log.Warn("fetching example failed", "word_id", wordID, "example_id", exampleID, "error", err)
	return nil
}

// CreateUserExample attaches a new example sentence to a word.
func (c *Client) CreateUserExample(wordID int, text string) (*UserExample, error) {
	attempt := func() (*UserExample, error) {
		var example UserExample
		err := c.doJSON(http.MethodPost, fmt.Sprintf("words/%d/examples/create/", wordID),
			map[string]string{"example_text": text}, &example)
		if err != nil {
			return nil, err
		}
		return &example, nil
	}
	return c.mutateExample(attempt, "creating example")
}

// UpdateUserExample replaces the text of an existing example.
func (c *Client) UpdateUserExample(wordID, exampleID int, text string) (*UserExample, error) {
	attempt := func() (*UserExample, error) {
		var example UserExample
		err := c.doJSON(http.MethodPatch, fmt.Sprintf("words/%d/examples/%d/", wordID, exampleID),
			map[string]string{"example_text": text}, &example)
		if err != nil {
			return nil, err
		}
		return &example, nil
	}
	return c.mutateExample(attempt, "updating example")
}

func (c *Client) mutateExample(attempt func() (*UserExample, error), action string) (*UserExample, error) {
	example, err := attempt()
	if err == nil {
		return example, nil
	}
	if retried, ok, rerr := callWithRefresh(c, err, attempt); ok {
		return retried, nil
	} else if rerr != nil {
		return nil, fmt.Errorf("%s failed: %w", action, rerr)
	}
	if statusOf(err) == http.StatusUnauthorized {
		return nil, ErrSessionExpired
	}
	return nil, fmt.Errorf("%s failed: %w", action, err)
}

// DeleteUserExample removes an example, reporting plain success.
func (c *Client) DeleteUserExample(wordID, exampleID int) bool {
	return c.delete(fmt.Sprintf("words/%d/examples/%d/", wordID, exampleID))
}

type generatePayload struct {
	Context    string `json:"context,omitempty"`
	Difficulty string `json:"difficulty_level"`
}

type generateResponse struct {
	Success bool   `json:"success"`
	Example string `json:"example"`
	Word    string `json:"word"`
	Error   string `json:"error,omitempty"`
}

// GenerateExample asks the backend's AI to produce an example sentence for a
// word. Best effort: a usable sentence comes back only when the backend
// reports success and includes text; any other outcome is logged and yields
// an empty string. Expired access tokens still get the one-shot refresh.
func (c *Client) GenerateExample(wordID int, opts GenerateOptions) string {
	payload := generatePayload{
		Context:    opts.Context,
		Difficulty: opts.Difficulty,
	}
	if payload.Difficulty == "" {
		payload.Difficulty = DefaultDifficulty
	}

	attempt := func() (generateResponse, error) {
		var resp generateResponse
		err := c.doJSON(http.MethodPost, fmt.Sprintf("words/%d/examples/generate/", wordID), payload, &resp)
		return resp, err
	}

	resp, err := attempt()
	if err != nil {
		if retried, ok, rerr := callWithRefresh(c, err, attempt); ok {
			resp = retried
		} else {
			if rerr != nil {
				err = rerr
			}
			c.log.Warn("example generation failed", "word_id", wordID, "error", err)
			return ""
		}
	}

	if !resp.Success || resp.Example == "" {
		c.log.Warn("example generation returned no text", "word_id", wordID, "error", resp.Error)
		return ""
	}
	return resp.Example
}
