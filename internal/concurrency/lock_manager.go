package concurrency

import "sync"

type keyLock struct {
	mu      sync.Mutex
	waiters int
}

// LockManager serializes work per key (one account's battle turns). A key's
// mutex exists only while someone holds or waits for it, so the map stays as
// small as the number of accounts currently acting. Nothing is persisted.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock blocks until key is free and returns the matching unlock func.
//
//	defer lm.Lock(userID)()
func (lm *LockManager) Lock(key string) func() {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{}
		lm.locks[key] = l
	}
	l.waiters++
	lm.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()
			lm.mu.Lock()
			l.waiters--
			if l.waiters == 0 {
				delete(lm.locks, key)
			}
			lm.mu.Unlock()
		})
	}
}

// Held reports how many keys are currently locked or awaited.
func (lm *LockManager) Held() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
