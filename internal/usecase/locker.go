package usecase

import "sync"

// applicationLocker serializes transitions per application id.
//
// Operations on different applications proceed in parallel; two concurrent
// operations on the same record (e.g. simultaneous accept and reject) are
// forced into sequence so the second one sees the first one's state.
// Locks are held only for the validate+save+emit span of one operation.
type applicationLocker struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newApplicationLocker() *applicationLocker {
	return &applicationLocker{locks: map[string]*lockEntry{}}
}

// Lock acquires the mutex for id and returns the matching unlock func.
// Entries are reference-counted and removed when the last holder releases,
// so the map does not grow with the table.
func (l *applicationLocker) Lock(id string) func() {
	l.mu.Lock()
	e, ok := l.locks[id]
	if !ok {
		e = &lockEntry{}
		l.locks[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
