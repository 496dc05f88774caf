package models

import (
	"time"

	"github.com/quilljot/quill/internal/constants"
)

// Entry represents one journaling session record
type Entry struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Prompt    string         `json:"prompt"`
	Text      string         `json:"text"`
	WordCount int            `json:"word_count"`
	Mode      constants.Mode `json:"mode"`
}

// Qualifying reports whether the entry earns streak credit
func (e Entry) Qualifying() bool {
	return e.WordCount >= constants.MinWordsForStreak
}

// Day returns the entry's calendar date (YYYY-MM-DD) in the entry's own location
func (e Entry) Day() string {
	return e.CreatedAt.Format(constants.DateFormat)
}
