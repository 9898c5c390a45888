package cache

import (
	"sync"
)

// SeenCache tracks which episode numbers have already been evaluated for a
// series across feed polling cycles. It lives only in process memory; a
// restart loses it and the episode store remains the authoritative check.
type SeenCache struct {
	entries map[string]map[string]struct{}
	mu      sync.Mutex
}

func NewSeenCache() *SeenCache {
	return &SeenCache{
		entries: make(map[string]map[string]struct{}),
	}
}

// Seen reports whether the episode number was already evaluated for the series.
// A series with no entry is an empty set.
func (c *SeenCache) Seen(seriesID, number string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	set, ok := c.entries[seriesID]
	if !ok {
		return false
	}
	_, seen := set[number]
	return seen
}

// CheckAndMark marks the episode number as evaluated and reports whether this
// call was the first to do so. The check and the insert happen under one lock
// so two concurrent evaluations of the same entry cannot both win.
func (c *SeenCache) CheckAndMark(seriesID, number string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	set, ok := c.entries[seriesID]
	if !ok {
		set = make(map[string]struct{})
		c.entries[seriesID] = set
	}
	if _, seen := set[number]; seen {
		return false
	}
	set[number] = struct{}{}
	return true
}

// Clear drops every tracked series.
func (c *SeenCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]map[string]struct{})
}

// Size returns the number of series with at least one tracked episode.
func (c *SeenCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
