package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../mocks/domain_mocks.go -package=mocks . Cache,FileSystem,AssetSink

// Cache defines the interface for manifest caching
type Cache interface {
	// Get retrieves a value from cache, returning ErrCacheMiss when absent
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Has checks if a key exists in cache
	Has(ctx context.Context, key string) bool
	// Delete removes a key from cache
	Delete(ctx context.Context, key string) error
	// Close releases cache resources
	Close() error
}

// FileSystem maps logical file references to absolute paths and reads them
type FileSystem interface {
	// Resolve returns the absolute path for a reference, or an error when no
	// existing file backs it
	Resolve(ref string) (string, error)
	// ReadFile returns the raw bytes of the file at path
	ReadFile(path string) ([]byte, error)
}

// AssetSink receives emission descriptors. It is the page-rendering layer's
// asset registry; re-adding an identifier replaces the earlier descriptor.
type AssetSink interface {
	AddJavaScript(identifier, source string, attributes map[string]string, options AssetOptions)
	AddStyleSheet(identifier, source string, attributes map[string]string, options AssetOptions)
	AddInlineStyleSheet(identifier, content string, attributes map[string]string, options AssetOptions)
}

// PortSource supplies the dev-server port override. An empty string means unset.
type PortSource interface {
	PortOverride() string
}
