package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the interface for caching generated documents
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// DraftKey generates a cache key for a generation request. Two requests
// with the same provider, model, contract type, language, clause set, and
// notes share a key, so identical drafts are served from cache.
func DraftKey(provider, model, contractType, language, notes string, clauseIDs []string) string {
	fingerprint := strings.Join([]string{
		provider,
		model,
		contractType,
		language,
		strings.Join(clauseIDs, ","),
		notes,
	}, "\x00")

	hash := sha256.Sum256([]byte(fingerprint))
	return "legalmate:v1:" + hex.EncodeToString(hash[:])
}
