// Package keylock serializes work per string key. The parking service takes
// a record's lock around its read-merge-validate-write sequence so two
// concurrent updates to the same record cannot interleave.
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

func New() *KeyLock {
	return &KeyLock{locks: make(map[string]*entry)}
}

// Lock blocks until the key is held. Every Lock must be paired with Unlock.
func (k *KeyLock) Lock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

func (k *KeyLock) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("keylock: unlock of unheld key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
