package services

import (
	"context"
	"testing"
	"time"

	"rentdesk/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLockerSerializesSameKey(t *testing.T) {
	l := NewKeyedLocker()
	ctx := context.Background()

	unlock, err := l.Lock(ctx, RoomKey(1), TenantKey(2))
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		u, err := l.Lock(ctx, TenantKey(2))
		if err == nil {
			close(acquired)
			u()
		}
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while the first is held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired")
	}
}

func TestKeyedLockerIndependentKeys(t *testing.T) {
	l := NewKeyedLocker()
	ctx := context.Background()

	u1, err := l.Lock(ctx, RoomKey(1))
	require.NoError(t, err)
	defer u1()
	u2, err := l.Lock(ctx, RoomKey(2), RoomKey(2))
	require.NoError(t, err)
	u2()
}

func TestKeyedLockerHonoursContext(t *testing.T) {
	l := NewKeyedLocker()
	unlock, err := l.Lock(context.Background(), PaymentKey(1))
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, RoomKey(9), PaymentKey(1))
	assert.Equal(t, errors.KindUnavailable, errors.KindOf(err))

	// room:9 was released when the wait was abandoned.
	u, err := l.Lock(context.Background(), RoomKey(9))
	require.NoError(t, err)
	u()
}
