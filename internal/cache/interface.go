package cache

import (
	"fmt"
	"time"

	"github.com/quantmind-br/viteassets/internal/domain"
)

// Ensure implementations satisfy domain.Cache
var (
	_ domain.Cache = (*BadgerCache)(nil)
	_ domain.Cache = (*MemoryCache)(nil)
	_ domain.Cache = NullCache{}

	_ Inspector = (*BadgerCache)(nil)
	_ Inspector = (*MemoryCache)(nil)
)

// Inspector is implemented by backends that can report and drop their contents
type Inspector interface {
	Stats() map[string]interface{}
	Clear() error
}

// Backend names accepted by New
const (
	BackendBadger = "badger"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// DefaultOpenTimeout bounds how long NewBadgerCache waits for a directory lock
const DefaultOpenTimeout = 5 * time.Second

// Entry represents a cached value with metadata
type Entry struct {
	Key       string    `json:"key"`
	Content   []byte    `json:"content"`
	StoredAt  time.Time `json:"stored_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired returns true if the entry has expired. Entries without an
// expiry never expire.
func (e *Entry) IsExpired() bool {
	if e.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(e.ExpiresAt)
}

// Options contains cache configuration options
type Options struct {
	Backend     string
	Directory   string
	InMemory    bool
	Logger      bool
	OpenTimeout time.Duration
}

// DefaultOptions returns default cache options
func DefaultOptions() Options {
	return Options{
		Backend:     BackendBadger,
		Directory:   "",
		InMemory:    false,
		Logger:      false,
		OpenTimeout: DefaultOpenTimeout,
	}
}

// New creates the cache selected by opts.Backend
func New(opts Options) (domain.Cache, error) {
	switch opts.Backend {
	case BackendBadger, "":
		return NewBadgerCache(opts)
	case BackendMemory:
		return NewMemoryCache(), nil
	case BackendNone:
		return NullCache{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}
