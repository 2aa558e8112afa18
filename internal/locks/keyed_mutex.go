package locks

import (
	"context"
	"sync"
)

// KeyedMutex is the in-process Locker: one mutex per session id, created on
// demand and dropped on release. Sufficient for a single-instance deployment.
type KeyedMutex struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{held: make(map[string]chan struct{})}
}

func (m *KeyedMutex) Acquire(ctx context.Context, sessionID string) (func(), error) {
	for {
		m.mu.Lock()
		ch, taken := m.held[sessionID]
		if !taken {
			m.held[sessionID] = make(chan struct{})
			m.mu.Unlock()

			var once sync.Once
			release := func() {
				once.Do(func() {
					m.mu.Lock()
					done := m.held[sessionID]
					delete(m.held, sessionID)
					m.mu.Unlock()
					close(done)
				})
			}
			return release, nil
		}
		m.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ch:
			// holder released; race for the lock again
		}
	}
}
