package ledger

import (
	"sort"
	"sync"
)

// KeyLock provides per-entity mutual exclusion. The store commits one write
// at a time with no cross-document transactions, so the check-then-apply
// sequence of every mutating operation runs under the locks of the entities
// it touches, held from admission through application.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyLock builds an empty lock table.
func NewKeyLock() *KeyLock {
	return &KeyLock{locks: make(map[string]*sync.Mutex)}
}

// Acquire locks every key and returns the release function. Keys are
// deduplicated and locked in sorted order so overlapping sets cannot
// deadlock.
func (kl *KeyLock) Acquire(keys ...string) (release func()) {
	seen := make(map[string]struct{}, len(keys))
	ordered := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		ordered = append(ordered, k)
	}
	sort.Strings(ordered)

	ms := make([]*sync.Mutex, 0, len(ordered))
	for _, k := range ordered {
		ms = append(ms, kl.get(k))
	}
	for _, m := range ms {
		m.Lock()
	}
	return func() {
		for i := len(ms) - 1; i >= 0; i-- {
			ms[i].Unlock()
		}
	}
}

func (kl *KeyLock) get(key string) *sync.Mutex {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	m, ok := kl.locks[key]
	if !ok {
		m = &sync.Mutex{}
		kl.locks[key] = m
	}
	return m
}
