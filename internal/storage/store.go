package storage

import "strings"

// Store keys, one namespace per typed store.
const (
	keyEntries     = "entries"
	keyStreak      = "streak"
	keyRecent      = "recent_prompts"
	keyPreferences = "preferences"
	keyPoolCache   = "prompt_pool"
)

// Provider is the storage surface the rest of the application sees.
type Provider interface {
	Init() error
	Load() error
	Close() error
	GetConfigPath() string
	IsAvailable() bool

	Entries() *EntryStore
	Streak() *StreakStore
	Recency() *RecencyStore
	Prefs() *PrefStore
	PoolCache() *PoolCache
}

// Store wires a backend to the typed stores.
type Store struct {
	backend Backend
	kv      *KV

	entries   *EntryStore
	streak    *StreakStore
	recency   *RecencyStore
	prefs     *PrefStore
	poolCache *PoolCache
}

// New creates a store for the given config path. Paths ending in .json get
// the plain-text JSON backend; everything else defaults to SQLite.
func New(configPath string) *Store {
	var backend Backend
	if strings.HasSuffix(configPath, ".json") {
		backend = NewJSONBackend(configPath)
	} else {
		backend = NewSQLiteBackend(configPath)
	}
	return NewWithBackend(backend)
}

// NewWithBackend creates a store over an explicit backend.
func NewWithBackend(backend Backend) *Store {
	kv := NewKV(backend)
	return &Store{
		backend:   backend,
		kv:        kv,
		entries:   &EntryStore{kv: kv},
		streak:    &StreakStore{kv: kv},
		recency:   &RecencyStore{kv: kv},
		prefs:     &PrefStore{kv: kv},
		poolCache: &PoolCache{kv: kv},
	}
}

func (s *Store) Init() error  { return s.backend.Init() }
func (s *Store) Load() error  { return s.backend.Open() }
func (s *Store) Close() error { return s.backend.Close() }

func (s *Store) GetConfigPath() string { return s.backend.ConfigPath() }
func (s *Store) IsAvailable() bool     { return s.kv.IsAvailable() }

func (s *Store) Entries() *EntryStore   { return s.entries }
func (s *Store) Streak() *StreakStore   { return s.streak }
func (s *Store) Recency() *RecencyStore { return s.recency }
func (s *Store) Prefs() *PrefStore      { return s.prefs }
func (s *Store) PoolCache() *PoolCache  { return s.poolCache }
