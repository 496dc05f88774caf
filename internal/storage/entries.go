package storage

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quilljot/quill/internal/constants"
	"github.com/quilljot/quill/internal/models"
	"github.com/quilljot/quill/internal/wordcount"
)

// EntryStore owns the entries archive. It alone assigns IDs, keeps the
// archive newest-first, and filters on delete.
type EntryStore struct {
	kv *KV
}

// List returns all entries, newest first.
func (s *EntryStore) List() []models.Entry {
	return Read(s.kv, keyEntries, []models.Entry{})
}

// Get returns the entry with the given id.
func (s *EntryStore) Get(id string) (models.Entry, bool) {
	for _, e := range s.List() {
		if e.ID == id {
			return e, true
		}
	}
	return models.Entry{}, false
}

// Add creates an entry from a finished session and prepends it to the
// archive. The word count is computed here, at save time. The returned bool
// reports whether the entry was durably persisted.
func (s *EntryStore) Add(mode constants.Mode, prompt, text string, now time.Time) (models.Entry, bool) {
	entry := models.Entry{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Prompt:    prompt,
		Text:      text,
		WordCount: wordcount.Count(text),
		Mode:      mode,
	}

	entries := append([]models.Entry{entry}, s.List()...)
	return entry, Write(s.kv, keyEntries, entries)
}

// Delete removes the entry with the given id. Deleting a missing id is a
// no-op that leaves the archive unchanged.
func (s *EntryStore) Delete(id string) bool {
	entries := s.List()
	kept := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return true
	}
	return Write(s.kv, keyEntries, kept)
}

// Clear removes the whole archive.
func (s *EntryStore) Clear() bool {
	return s.kv.Remove(keyEntries)
}

// Search returns entries whose prompt or text contains the query,
// case-insensitively, preserving newest-first order.
func (s *EntryStore) Search(query string) []models.Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.List()
	}

	var matches []models.Entry
	for _, e := range s.List() {
		if strings.Contains(strings.ToLower(e.Text), q) || strings.Contains(strings.ToLower(e.Prompt), q) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Totals returns the entry count and the summed word count of the archive.
func (s *EntryStore) Totals() (count, words int) {
	for _, e := range s.List() {
		count++
		words += e.WordCount
	}
	return count, words
}
