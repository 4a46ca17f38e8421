package dictionary

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aigerimdev/vocabloom-cli/internal/client"
)

// Cache stores normalized lookups keyed by term so repeated terms resolve
// offline.
type Cache struct {
	db *sql.DB
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS lookups (
	term       TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	fetched_at TIMESTAMP NOT NULL
);`

func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) Get(term string) (*client.Word, bool) {
	var data string
	err := c.db.QueryRow(`SELECT data FROM lookups WHERE term = ?`, term).Scan(&data)
	if err != nil {
		return nil, false
	}
	var word client.Word
	if err := json.Unmarshal([]byte(data), &word); err != nil {
		return nil, false
	}
	return &word, true
}

func (c *Cache) Put(term string, word *client.Word) error {
	data, err := json.Marshal(word)
	if err != nil {
		return err
	}
	_, err = c.db.Exec(
		`INSERT INTO lookups (term, data, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(term) DO UPDATE SET data = excluded.data, fetched_at = excluded.fetched_at`,
		term, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert lookup: %w", err)
	}
	return nil
}
