package storage

// Provider is a durable key-value store holding the serialized collections.
//
// Concurrency note:
//   - Providers are not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple crema processes that share the same storage path at the
//     same time is not supported and may lead to data loss or corruption.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error

	// Utils
	GetConfigPath() string
}
