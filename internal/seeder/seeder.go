// Package seeder fills a vocabloom account with generated demo data.
package seeder

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/aigerimdev/vocabloom-cli/internal/client"
)

type Seeder struct {
	client *client.Client
	log    *slog.Logger
}

type Stats struct {
	WordsCreated int
	TagsCreated  int
	Duplicates   int
}

func New(c *client.Client, log *slog.Logger) *Seeder {
	if log == nil {
		log = slog.Default()
	}
	return &Seeder{client: c, log: log}
}

var partsOfSpeech = []string{"noun", "verb", "adjective"}

// Run creates tagCount tags and wordCount generated words through the API.
// Duplicates are counted and skipped, not treated as failures.
func (s *Seeder) Run(wordCount, tagCount int) (*Stats, error) {
	gofakeit.Seed(time.Now().UnixNano())

	stats := &Stats{}
	tagIDs := make([]int, 0, tagCount)

	for i := 0; i < tagCount; i++ {
		tag, err := s.client.CreateTag(gofakeit.Noun())
		if err != nil {
			if errors.Is(err, client.ErrTagDuplicate) {
				stats.Duplicates++
				continue
			}
			return stats, fmt.Errorf("seeding tags: %w", err)
		}
		tagIDs = append(tagIDs, tag.ID)
		stats.TagsCreated++
	}

	for i := 0; i < wordCount; i++ {
		word := s.generateWord()
		if len(tagIDs) > 0 {
			id := tagIDs[gofakeit.Number(0, len(tagIDs)-1)]
			word.Tag = &id
		}

		saved, err := s.client.SaveWord(word)
		if err != nil {
			if errors.Is(err, client.ErrWordDuplicate) {
				stats.Duplicates++
				continue
			}
			return stats, fmt.Errorf("seeding words: %w", err)
		}
		s.log.Debug("seeded word", "id", saved.ID, "word", saved.Word)
		stats.WordsCreated++
	}
	return stats, nil
}

func (s *Seeder) generateWord() client.Word {
	pos := partsOfSpeech[gofakeit.Number(0, len(partsOfSpeech)-1)]
	return client.Word{
		Word: gofakeit.Word(),
		Meanings: []client.Meaning{{
			PartOfSpeech: pos,
			Definitions: []client.Definition{{
				Definition: gofakeit.Sentence(8),
				Example:    gofakeit.Sentence(10),
			}},
		}},
	}
}
