package jobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"rentdesk/services/logger"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReminder struct {
	calls atomic.Int32
}

func (r *countingReminder) Run(ctx context.Context, now time.Time) (int, error) {
	r.calls.Add(1)
	return 0, nil
}

func TestKeepAlivePing(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("pong"))
	}))
	defer srv.Close()

	k := NewKeepAlive(srv.URL+"/ping", logger.NewNop())
	require.NoError(t, k.Ping(context.Background()))
	assert.Equal(t, int32(1), hits.Load())
}

func TestKeepAlivePingReportsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	k := NewKeepAlive(srv.URL, logger.NewNop())
	assert.Error(t, k.Ping(context.Background()))
}

func TestInitCronJobs(t *testing.T) {
	c := cron.New()
	defer c.Stop()

	require.NoError(t, InitCronJobs(c, &countingReminder{}, nil, logger.NewNop()))
	assert.Len(t, c.Entries(), 1)

	c2 := cron.New()
	defer c2.Stop()
	require.NoError(t, InitCronJobs(c2, &countingReminder{}, NewKeepAlive("http://127.0.0.1:0", logger.NewNop()), logger.NewNop()))
	assert.Len(t, c2.Entries(), 2)
}

func TestRentReminderSchedule(t *testing.T) {
	sched, err := cron.ParseStandard(RentReminderSpec)
	require.NoError(t, err)

	next := sched.Next(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), next)
	next = sched.Next(next)
	assert.Equal(t, time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC), next)
}
