package storage

import "github.com/quilljot/quill/internal/constants"

// RecencyStore owns the bounded queue of recently shown prompt texts,
// most-recent-first. It only biases future prompt selection; losing it is
// harmless.
type RecencyStore struct {
	kv *KV
}

// Recent returns the recently shown prompts, most recent first.
func (s *RecencyStore) Recent() []string {
	recent := Read(s.kv, keyRecent, []string{})
	if len(recent) > constants.MaxRecentPrompts {
		recent = recent[:constants.MaxRecentPrompts]
	}
	return recent
}

// Record prepends a shown prompt, dropping any earlier occurrence of the
// same text and truncating to capacity.
func (s *RecencyStore) Record(prompt string) bool {
	if prompt == "" {
		return true
	}

	recent := []string{prompt}
	for _, p := range s.Recent() {
		if p == prompt {
			continue
		}
		recent = append(recent, p)
	}
	if len(recent) > constants.MaxRecentPrompts {
		recent = recent[:constants.MaxRecentPrompts]
	}

	return Write(s.kv, keyRecent, recent)
}
