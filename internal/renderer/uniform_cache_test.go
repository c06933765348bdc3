package renderer

import (
	"testing"
)

func TestNewUniformCache(t *testing.T) {
	cache := NewUniformCache(0)

	if cache == nil {
		t.Fatal("NewUniformCache returned nil")
	}

	if cache.locations == nil {
		t.Error("locations map should be initialized")
	}
}

func TestUniformCacheHit(t *testing.T) {
	cache := NewUniformCache(0)
	cache.locations["horizonPos"] = 7

	// A cached name must resolve without touching GL
	if loc := cache.GetLocation("horizonPos"); loc != 7 {
		t.Errorf("Expected cached location 7, got %d", loc)
	}
}

func TestUniformCacheClear(t *testing.T) {
	cache := NewUniformCache(0)
	cache.locations["horizonNormal"] = 5

	cache.Clear()

	if len(cache.locations) != 0 {
		t.Error("Clear should empty the cache")
	}
}
