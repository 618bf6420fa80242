// Package cache provides translation caching implementations.
package cache

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	// Get retrieves a cached translation. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a translation in the cache. Overwriting is idempotent; last writer wins.
	Set(key string, value string) error
}

// Stats summarizes the contents of a cache.
type Stats struct {
	Entries       int // Number of live entries
	LanguagePairs int // Number of distinct (source, target) pairs
}

// StatsReader is implemented by caches that can report their contents.
type StatsReader interface {
	Stats() Stats
}
