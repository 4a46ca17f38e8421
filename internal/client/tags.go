package client

import (
	"fmt"
	"net/http"
)

// Tags lists the user's tags, empty on unrecoverable failure.
func (c *Client) Tags() []Tag {
	fetch := func() ([]Tag, error) {
		var tags []Tag
		if err := c.doJSON(http.MethodGet, "tags/", nil, &tags); err != nil {
			return nil, err
		}
		return tags, nil
	}

	tags, err := fetch()
	if err == nil {
		return tags
	}
	if retried, ok, rerr := callWithRefresh(c, err, fetch); ok {
		return retried
	} else if rerr != nil {
		err = rerr
	}
	c.log.Warn("listing tags failed", "error", err)
	return []Tag{}
}

// Tag fetches a single tag by id, nil when it cannot be retrieved.
func (c *Client) Tag(id int) *Tag {
	fetch := func() (*Tag, error) {
		var tag Tag
		if err := c.doJSON(http.MethodGet, fmt.Sprintf("tags/%d/", id), nil, &tag); err != nil {
			return nil, err
		}
		return &tag, nil
	}

	tag, err := fetch()
	if err == nil {
		return tag
	}
	if retried, ok, rerr := callWithRefresh(c, err, fetch); ok {
		return retried
	} else if rerr != nil {
		err = rerr
	}
	c.log.Warn("fetching tag failed", "id", id, "error", err)
	return nil
}

// WordsByTag lists the words filed under a tag.
func (c *Client) WordsByTag(tagID int) []Word {
	return c.listWords(fmt.Sprintf("tags/%d/words/", tagID))
}

// CreateTag makes a new tag. Tag names are unique per user; a conflict
// surfaces as ErrTagDuplicate and bypasses the refresh retry.
func (c *Client) CreateTag(name string) (*Tag, error) {
	attempt := func() (*Tag, error) {
		var tag Tag
		if err := c.doJSON(http.MethodPost, "tags/", map[string]string{"name": name}, &tag); err != nil {
			return nil, err
		}
		return &tag, nil
	}

	tag, err := attempt()
	if err == nil {
		return tag, nil
	}
	if dup := classifyDuplicate(err, kindTag); dup != nil {
		return nil, dup
	}
	if retried, ok, rerr := callWithRefresh(c, err, attempt); ok {
		return retried, nil
	} else if rerr != nil {
		return nil, fmt.Errorf("creating tag failed: %w", rerr)
	}
	if statusOf(err) == http.StatusUnauthorized {
		return nil, ErrSessionExpired
	}
	return nil, fmt.Errorf("creating tag failed: %w", err)
}

// DeleteTag removes a tag, reporting plain success.
func (c *Client) DeleteTag(id int) bool {
	return c.delete(fmt.Sprintf("tags/%d/", id))
}
