package rsa

import (
	"sync"

	"github.com/bnema/iterrsa/internal/domain"
)

type memoKey struct {
	depth  int
	prefix string
	world  string
}

// speakerMemo is safe to use through a nil pointer; a nil memo never hits.
type speakerMemo struct {
	mu    sync.RWMutex
	dists map[memoKey]domain.Distribution
}

func newSpeakerMemo() *speakerMemo {
	return &speakerMemo{dists: make(map[memoKey]domain.Distribution)}
}

func (c *speakerMemo) get(key memoKey) (domain.Distribution, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	dist, ok := c.dists[key]
	return dist, ok
}

func (c *speakerMemo) put(key memoKey, dist domain.Distribution) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.dists[key] = dist
}

func (c *speakerMemo) size() int {
	if c == nil {
		return 0
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.dists)
}
