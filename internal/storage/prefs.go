package storage

import (
	"github.com/quilljot/quill/internal/constants"
	"github.com/quilljot/quill/internal/models"
)

// PrefStore owns the preferences record.
type PrefStore struct {
	kv *KV
}

// Defaults returns the preferences used when nothing is stored yet.
func Defaults() models.Preferences {
	return models.Preferences{
		Timezone:       "Local",
		SessionMinutes: constants.DefaultSessionMinutes,
		PoolURL:        constants.DefaultPoolURL,
	}
}

// Get returns the stored preferences with defaults filled in for fields an
// older record may be missing.
func (s *PrefStore) Get() models.Preferences {
	prefs := Read(s.kv, keyPreferences, Defaults())
	if prefs.Timezone == "" {
		prefs.Timezone = "Local"
	}
	if prefs.SessionMinutes <= 0 {
		prefs.SessionMinutes = constants.DefaultSessionMinutes
	}
	if prefs.PoolURL == "" {
		prefs.PoolURL = constants.DefaultPoolURL
	}
	return prefs
}

// Save persists the preferences, reporting success.
func (s *PrefStore) Save(prefs models.Preferences) bool {
	return Write(s.kv, keyPreferences, prefs)
}
