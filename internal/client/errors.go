package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrWordDuplicate reports that the word already exists in the collection.
	ErrWordDuplicate = errors.New("WORD_DUPLICATE")
	// ErrTagDuplicate reports that a tag with the same name already exists.
	ErrTagDuplicate = errors.New("TAG_DUPLICATE")
	// ErrInvalidCredentials is returned by Login on a definitive rejection.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionExpired means a 401 could not be recovered by a token refresh.
	ErrSessionExpired = errors.New("session expired, please log in again")
)

// APIError is a non-2xx backend response. Message holds the human-readable
// text extracted from the body's known fields, when any was found.
type APIError struct {
	StatusCode int
	Body       []byte
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// statusOf returns the HTTP status carried by err, or 0 for transport-level
// failures that never produced a response.
func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

type duplicateKind int

const (
	kindWord duplicateKind = iota
	kindTag
)

// conflictVocabulary marks a 400 body as a uniqueness violation. Matching
// substrings rather than exact words trades false negatives for simplicity:
// a backend that reports a duplicate as a plain 400 without any of these
// words is surfaced as a generic failure.
var conflictVocabulary = []string{"exist", "already", "duplicate", "unique", "integrity", "constraint"}

// classifyDuplicate decides whether err represents a domain-level conflict.
// 409 is always a duplicate for the given kind; 400 only when the error
// body's text matches the conflict vocabulary. Anything else returns nil.
func classifyDuplicate(err error, kind duplicateKind) error {
	dup := ErrWordDuplicate
	if kind == kindTag {
		dup = ErrTagDuplicate
	}

	switch statusOf(err) {
	case http.StatusConflict:
		return dup
	case http.StatusBadRequest:
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			return nil
		}
		text := strings.ToLower(strings.Join(bodyStrings(apiErr.Body), " "))
		for _, word := range conflictVocabulary {
			if strings.Contains(text, word) {
				return dup
			}
		}
	}
	return nil
}

// bodyStrings collects every string value found anywhere in a JSON body.
func bodyStrings(body []byte) []string {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return []string{string(body)}
	}
	var out []string
	collectStrings(decoded, &out)
	return out
}

func collectStrings(v any, out *[]string) {
	switch val := v.(type) {
	case string:
		*out = append(*out, val)
	case []any:
		for _, item := range val {
			collectStrings(item, out)
		}
	case map[string]any:
		for _, item := range val {
			collectStrings(item, out)
		}
	}
}

// extractMessage pulls a human-readable message out of a DRF-style error
// body: "detail" first, then "non_field_errors", then the first
// field-specific error array.
func extractMessage(body []byte) string {
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return ""
	}

	if detail, ok := decoded["detail"].(string); ok && detail != "" {
		return detail
	}
	if msgs, ok := decoded["non_field_errors"].([]any); ok && len(msgs) > 0 {
		if msg, ok := msgs[0].(string); ok {
			return msg
		}
	}
	for field, v := range decoded {
		if msgs, ok := v.([]any); ok && len(msgs) > 0 {
			if msg, ok := msgs[0].(string); ok {
				return fmt.Sprintf("%s: %s", field, msg)
			}
		}
	}
	return ""
}
