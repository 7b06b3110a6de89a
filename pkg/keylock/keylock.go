// Package keylock provides a mutex keyed by string. The engine uses it to
// serialize regenerate/submit calls for the same payout period and
// add/update calls for the same excluded login. It is a fast-path
// optimization only: the database constraints remain the authoritative
// race-breakers.
package keylock

import "sync"

// KeyLock is a set of named mutexes. The zero value is not usable; call New.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// New creates an empty KeyLock.
func New() *KeyLock {
	return &KeyLock{locks: make(map[string]*lockEntry)}
}

// Lock acquires the mutex for key, blocking until it is available, and
// returns the matching unlock function. Entries are removed once the last
// holder releases, so the map does not grow with the key space.
func (l *KeyLock) Lock(key string) (unlock func()) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &lockEntry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}
