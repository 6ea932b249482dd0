package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultFallback is returned when no word can be fetched
const DefaultFallback = "PYTHON"

// Word is a single upper-cased hangman word, created per request
type Word struct {
	Text     string
	Fallback bool
}

// NewWord upper-cases a raw upstream token; nothing else is changed
func NewWord(raw string) Word {
	return Word{Text: upper(raw)}
}

// FallbackWord builds the fallback token
func FallbackWord(text string) Word {
	return Word{Text: upper(text), Fallback: true}
}

// upper applies full Unicode upper-casing, e.g. "ß" becomes "SS".
// A Caser is not safe for concurrent use, so one is built per call.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Len returns the number of letters, used for the hangman blanks
func (w Word) Len() int {
	return len([]rune(w.Text))
}

// WordResponse is the JSON body of GET /get-word
type WordResponse struct {
	Word string `json:"word"`
}

// Response converts the word to its wire form
func (w Word) Response() WordResponse {
	return WordResponse{Word: w.Text}
}
