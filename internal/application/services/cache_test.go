package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecommendationCache_PutGet(t *testing.T) {
	cache := NewRecommendationCache(time.Minute)
	rec := &Recommendation{ID: "abc", RouteName: "Han River Walk"}

	cache.Put(rec)

	got, ok := cache.Get("abc")
	assert.True(t, ok)
	assert.Equal(t, "Han River Walk", got.RouteName)

	_, ok = cache.Get("missing")
	assert.False(t, ok)
}

func TestRecommendationCache_Expiry(t *testing.T) {
	cache := NewRecommendationCache(time.Minute)
	current := time.Now()
	cache.now = func() time.Time { return current }

	cache.Put(&Recommendation{ID: "abc"})

	current = current.Add(2 * time.Minute)

	_, ok := cache.Get("abc")
	assert.False(t, ok)
	// entry is gone for readers but still held until purged
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, 1, cache.PurgeExpired())
	assert.Equal(t, 0, cache.Len())
}

func TestRecommendationCache_PurgeKeepsLiveEntries(t *testing.T) {
	cache := NewRecommendationCache(time.Minute)
	cache.Put(&Recommendation{ID: "live"})

	assert.Equal(t, 0, cache.PurgeExpired())
	_, ok := cache.Get("live")
	assert.True(t, ok)
}
