package store

// DB is the key-value storage interface. Values are opaque documents that
// are read and rewritten as a whole.
type DB interface {
	// Get returns the value stored under key, or nil if the key is absent.
	Get(key string) ([]byte, error)
	// Put creates or overwrites the value stored under key.
	Put(key string, value []byte) error
	// Close releases the underlying storage
	Close() error
}
