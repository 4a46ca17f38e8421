package client

// Definition is a single sense of a word.
type Definition struct {
	Definition string `json:"definition"`
	Example    string `json:"example,omitempty"`
}

// Meaning groups the definitions a word has for one part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Word is a saved vocabulary entry. IDs are assigned by the backend.
type Word struct {
	ID           int           `json:"id"`
	Word         string        `json:"word"`
	Phonetic     string        `json:"phonetic,omitempty"`
	Audio        string        `json:"audio,omitempty"`
	Meanings     []Meaning     `json:"meanings"`
	Tag          *int          `json:"tag,omitempty"`
	Note         *string       `json:"note,omitempty"`
	UserExamples []UserExample `json:"user_examples,omitempty"`
}

// Tag is a user-defined label for grouping words. Names are unique per user.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserExample is a personal example sentence attached to a word.
type UserExample struct {
	ID          int    `json:"id"`
	ExampleText string `json:"example_text"`
	CreatedAt   string `json:"created_at"`
	WordID      int    `json:"word"`
}

// GenerateOptions tune AI example generation.
type GenerateOptions struct {
	Context    string
	Difficulty string // beginner, intermediate or advanced
}

// RegisteredUser is the backend's echo of a newly registered account.
type RegisteredUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
