package services

import (
	"sync"
	"time"
)

// DefaultRecommendationTTL is how long a completed recommendation stays
// retrievable by ID.
const DefaultRecommendationTTL = time.Hour

type cacheEntry struct {
	rec       *Recommendation
	expiresAt time.Time
}

// RecommendationCache keeps completed recommendations in memory so clients
// can re-fetch them by ID without re-running the LLM pipeline. Entries expire
// after a TTL; the ServiceManager scheduler purges expired ones.
type RecommendationCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewRecommendationCache creates a cache with the given TTL. A zero TTL
// falls back to DefaultRecommendationTTL.
func NewRecommendationCache(ttl time.Duration) *RecommendationCache {
	if ttl <= 0 {
		ttl = DefaultRecommendationTTL
	}
	return &RecommendationCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Put stores a recommendation under its ID.
func (c *RecommendationCache) Put(rec *Recommendation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[rec.ID] = cacheEntry{
		rec:       rec,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Get returns the recommendation for an ID if it exists and has not expired.
func (c *RecommendationCache) Get(id string) (*Recommendation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[id]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.rec, true
}

// PurgeExpired removes every expired entry and reports how many were evicted.
func (c *RecommendationCache) PurgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	evicted := 0
	for id, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, id)
			evicted++
		}
	}
	return evicted
}

// Len reports the number of entries currently held, expired or not.
func (c *RecommendationCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
