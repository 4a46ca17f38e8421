package client

import (
	"unicode"
	"unicode/utf8"
)

// The backend stores meanings with a snake_cased part-of-speech field and
// capitalized word/part-of-speech text. Everything crossing the wire goes
// through these shapes; the rest of the program only sees Word and Meaning.

type wireMeaning struct {
	PartOfSpeech string       `json:"part_of_speech"`
	Definitions  []Definition `json:"definitions"`
}

type wireWord struct {
	ID           int           `json:"id,omitempty"`
	Word         string        `json:"word"`
	Phonetic     string        `json:"phonetic,omitempty"`
	Audio        string        `json:"audio,omitempty"`
	Meanings     []wireMeaning `json:"meanings"`
	Tag          *int          `json:"tag,omitempty"`
	Note         *string       `json:"note,omitempty"`
	UserExamples []UserExample `json:"user_examples,omitempty"`
}

func (w wireWord) toWord() Word {
	meanings := make([]Meaning, 0, len(w.Meanings))
	for _, m := range w.Meanings {
		meanings = append(meanings, Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  m.Definitions,
		})
	}
	return Word{
		ID:           w.ID,
		Word:         w.Word,
		Phonetic:     w.Phonetic,
		Audio:        w.Audio,
		Meanings:     meanings,
		Tag:          w.Tag,
		Note:         w.Note,
		UserExamples: w.UserExamples,
	}
}

// toWirePayload builds the save-word request body: word text and each
// part of speech are capitalized, the server assigns the id.
func toWirePayload(w Word) wireWord {
	meanings := make([]wireMeaning, 0, len(w.Meanings))
	for _, m := range w.Meanings {
		meanings = append(meanings, wireMeaning{
			PartOfSpeech: capitalize(m.PartOfSpeech),
			Definitions:  m.Definitions,
		})
	}
	return wireWord{
		Word:     capitalize(w.Word),
		Phonetic: w.Phonetic,
		Audio:    w.Audio,
		Meanings: meanings,
		Tag:      w.Tag,
		Note:     w.Note,
	}
}

// capitalize upper-cases the first rune and leaves the rest untouched.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
