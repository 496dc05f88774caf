package storage

// Backend is a raw durable key-value medium. Implementations report real
// errors; the KV layer above decides that none of them are fatal.
type Backend interface {
	// Init creates the backing medium, failing if it already exists.
	Init() error
	// Open opens an existing medium, failing if it was never initialized.
	Open() error
	Close() error
	// ConfigPath returns the filesystem path of the backing medium.
	ConfigPath() string

	ReadKey(key string) ([]byte, bool, error)
	WriteKey(key string, data []byte) error
	DeleteKey(key string) error
}
