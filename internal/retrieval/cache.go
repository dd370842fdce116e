package retrieval

import (
	"crypto/md5"
	"fmt"
	"sync"
	"time"
)

// answerCache provides simple in-memory caching for retrieval answers.
// Re-parsing the same resume is common enough to make this worthwhile.
type answerCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	answer    string
	timestamp time.Time
}

func newAnswerCache(ttl time.Duration) *answerCache {
	return &answerCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// get retrieves a cached answer if available and not expired.
func (c *answerCache) get(query, text string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[cacheKey(query, text)]
	if !exists {
		return "", false
	}

	if time.Since(entry.timestamp) > c.ttl {
		return "", false
	}

	return entry.answer, true
}

// set stores an answer in the cache.
func (c *answerCache) set(query, text, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(query, text)] = &cacheEntry{
		answer:    answer,
		timestamp: time.Now(),
	}
}

// cleanExpired removes expired entries (call periodically).
func (c *answerCache) cleanExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.entries {
		if now.Sub(entry.timestamp) > c.ttl {
			delete(c.entries, key)
		}
	}
}

func cacheKey(query, text string) string {
	hash := md5.Sum([]byte(query + "|" + text))
	return fmt.Sprintf("%x", hash)
}
