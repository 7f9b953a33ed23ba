package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"rentdesk/errors"
)

func RoomKey(id uint) string    { return fmt.Sprintf("room:%d", id) }
func TenantKey(id uint) string  { return fmt.Sprintf("tenant:%d", id) }
func PaymentKey(id uint) string { return fmt.Sprintf("payment:%d", id) }

// KeyedLocker serializes operations on the same entity keys within the
// process. Keys are always acquired in sorted order.
type KeyedLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{locks: make(map[string]*keyLock)}
}

// Lock acquires every key or none. The returned func releases them.
func (l *KeyedLocker) Lock(ctx context.Context, keys ...string) (func(), error) {
	sorted := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			sorted = append(sorted, k)
		}
	}
	sort.Strings(sorted)

	held := make([]string, 0, len(sorted))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			l.release(held[i])
		}
	}
	for _, k := range sorted {
		if err := l.acquire(ctx, k); err != nil {
			release()
			return nil, errors.Unavailable("lock wait cancelled", err)
		}
		held = append(held, k)
	}
	return release, nil
}

func (l *KeyedLocker) acquire(ctx context.Context, key string) error {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	select {
	case kl.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
		return ctx.Err()
	}
}

func (l *KeyedLocker) release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl, ok := l.locks[key]
	if !ok {
		return
	}
	<-kl.ch
	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
}
