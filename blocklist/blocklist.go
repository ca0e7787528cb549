// Package blocklist records stop ids the upstream API has reported as
// nonexistent. Ids are never removed for the lifetime of the process.
package blocklist

import "sync"

type Blocklist struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func New() *Blocklist {
	return &Blocklist{ids: make(map[string]struct{})}
}

func (b *Blocklist) MarkInvalid(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ids[id] = struct{}{}
}

func (b *Blocklist) IsKnownInvalid(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.ids[id]
	return ok
}

func (b *Blocklist) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.ids)
}
