package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// GenerateKey generates a cache key as the SHA256 hex digest of s
func GenerateKey(s string) string {
	hash := sha256.Sum256([]byte(s))
	return hex.EncodeToString(hash[:])
}

// GenerateKeyWithPrefix generates a cache key with a prefix
func GenerateKeyWithPrefix(prefix, s string) string {
	return prefix + ":" + GenerateKey(s)
}

// KeyPrefix constants for different cache types
const (
	PrefixManifest = "manifest"
)

// ManifestKey generates the cache key for a parsed manifest. The key depends
// on the absolute path only, never on the file's content, so a warm entry
// keeps being served after the file changes until it is deleted.
func ManifestKey(absPath string) string {
	return GenerateKeyWithPrefix(PrefixManifest, absPath)
}
