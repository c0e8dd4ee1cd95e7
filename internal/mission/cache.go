package mission

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// templateCache keeps published mission templates in an LRU.
// Templates only change through a catalog reseed, which calls Clear.
type templateCache struct {
	lru *expirable.LRU[string, domain.Mission]
}

func newTemplateCache(size int, ttl time.Duration) *templateCache {
	return &templateCache{
		lru: expirable.NewLRU[string, domain.Mission](size, nil, ttl),
	}
}

// Get returns a copy of the cached template
func (c *templateCache) Get(missionID string) (*domain.Mission, bool) {
	m, ok := c.lru.Get(missionID)
	if !ok {
		return nil, false
	}
	return &m, true
}

func (c *templateCache) Set(m *domain.Mission) {
	c.lru.Add(m.ID, *m)
}

// Clear drops every cached template
func (c *templateCache) Clear() {
	c.lru.Purge()
}
