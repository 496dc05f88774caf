package storage

import (
	json "github.com/goccy/go-json"

	"github.com/quilljot/quill/internal/logger"
)

// probeKey is written and deleted by IsAvailable to confirm that the backing
// medium accepts writes in the current environment.
const probeKey = "__quill_probe__"

// KV is the durable key-value layer every typed store sits on. Reads and
// writes never propagate backend failures to the caller: a failed read
// degrades to the caller's default and a failed write reports false, with a
// diagnostic logged either way. Higher-level code can therefore treat
// storage as best effort and never fatal.
type KV struct {
	backend Backend
}

// NewKV wraps a backend in the failure-swallowing key-value layer.
func NewKV(backend Backend) *KV {
	return &KV{backend: backend}
}

// Get returns the raw value stored under key. The second result is false if
// the key is absent or the backend failed.
func (kv *KV) Get(key string) ([]byte, bool) {
	data, ok, err := kv.backend.ReadKey(key)
	if err != nil {
		logger.Warn("Storage read failed", "key", key, "error", err)
		return nil, false
	}
	return data, ok
}

// Set stores raw data under key, reporting success.
func (kv *KV) Set(key string, data []byte) bool {
	if err := kv.backend.WriteKey(key, data); err != nil {
		logger.Warn("Storage write failed", "key", key, "error", err)
		return false
	}
	return true
}

// Remove deletes key, reporting success. A missing key is not a failure.
func (kv *KV) Remove(key string) bool {
	if err := kv.backend.DeleteKey(key); err != nil {
		logger.Warn("Storage delete failed", "key", key, "error", err)
		return false
	}
	return true
}

// IsAvailable probes the backend with a write and a delete, confirming the
// store accepts writes in the current execution context.
func (kv *KV) IsAvailable() bool {
	if err := kv.backend.WriteKey(probeKey, []byte(`"probe"`)); err != nil {
		logger.Warn("Storage probe write failed", "error", err)
		return false
	}
	if err := kv.backend.DeleteKey(probeKey); err != nil {
		logger.Warn("Storage probe delete failed", "error", err)
		return false
	}
	return true
}

// Read decodes the value stored under key into T. It returns def if the key
// is absent, the backend is unavailable, or the stored payload does not
// decode — malformed content is treated as absence, never as an error.
func Read[T any](kv *KV, key string, def T) T {
	data, ok := kv.Get(key)
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warn("Storage payload malformed, using default", "key", key, "error", err)
		return def
	}
	return v
}

// Write encodes v and stores it under key, reporting success.
func Write[T any](kv *KV, key string, v T) bool {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn("Storage payload encoding failed", "key", key, "error", err)
		return false
	}
	return kv.Set(key, data)
}
