package util

import (
	"sync"
)

type idLockEntry struct {
	lock sync.Mutex

	// waiters counts the holder plus everyone blocked in Lock for this key.
	// The entry stays mapped until it drops to zero, so late waiters and new
	// callers always contend on the same mutex.
	waiters int
}

type IDLock[T comparable] struct {
	accessLock sync.Mutex
	lockMap    map[T]*idLockEntry
}

// NewIDLock creates a thread-safe map of sync.Mutexes keyed by ID.
func NewIDLock[T comparable]() IDLock[T] {
	return IDLock[T]{lockMap: make(map[T]*idLockEntry)}
}

// Lock fetches the existing lock, or creates a new lock for the given ID, and locks it.
func (l *IDLock[T]) Lock(key T) {
	l.accessLock.Lock()

	entry, ok := l.lockMap[key]
	if !ok {
		entry = &idLockEntry{}
		l.lockMap[key] = entry
	}

	entry.waiters++

	l.accessLock.Unlock()

	entry.lock.Lock()
}

// Unlock releases the lock for the given ID and drops the map entry once no
// goroutine is waiting on it anymore.
func (l *IDLock[T]) Unlock(key T) {
	l.accessLock.Lock()
	defer l.accessLock.Unlock()

	entry, ok := l.lockMap[key]
	if !ok {
		return
	}

	entry.waiters--
	if entry.waiters == 0 {
		delete(l.lockMap, key)
	}

	entry.lock.Unlock()
}
