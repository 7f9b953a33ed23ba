package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"rentdesk/config"
	"rentdesk/models"
	"rentdesk/repository"
	"rentdesk/services/metrics"

	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	userID  uint
	message string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (n *recordingNotifier) NotifyUser(userID uint, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentMessage{userID: userID, message: message})
	return nil
}

func (n *recordingNotifier) messagesFor(userID uint) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []string
	for _, m := range n.sent {
		if m.userID == userID {
			out = append(out, m.message)
		}
	}
	return out
}

type testEnv struct {
	ctx      context.Context
	store    *repository.Store
	svc      *Services
	admin    *AdminFacade
	notifier *recordingNotifier
	metrics  *metrics.Metrics
	opts     ServiceOptions
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := config.ConnectDB(&config.Config{DBDriver: "sqlite", SQLitePath: "file::memory:?_foreign_keys=on"})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	notifier := &recordingNotifier{}
	m := metrics.New()
	opts := ServiceOptions{
		Store:    repository.New(db),
		Locker:   NewKeyedLocker(),
		Notifier: notifier,
		Metrics:  m,
	}
	svc := NewServices(opts, nil, NewTokenIssuer("test-secret", 60), nil)
	return &testEnv{
		ctx:      context.Background(),
		store:    opts.Store,
		svc:      svc,
		admin:    NewAdminFacade(svc),
		notifier: notifier,
		metrics:  m,
		opts:     opts,
	}
}

func (e *testEnv) building(t *testing.T, name string) *models.Building {
	t.Helper()
	b, err := e.admin.CreateBuilding(e.ctx, BuildingInput{Name: name, Address: name + " street 1"})
	require.NoError(t, err)
	return b
}

func (e *testEnv) room(t *testing.T, buildingID uint, number string, rent int64) *models.Room {
	t.Helper()
	r, err := e.admin.CreateRoom(e.ctx, RoomInput{BuildingID: buildingID, RoomNumber: number, Rent: rent, Deposit: rent * 2})
	require.NoError(t, err)
	return r
}

func (e *testEnv) tenant(t *testing.T, name, email string) *models.User {
	t.Helper()
	u, err := e.svc.Auth.Register(e.ctx, RegisterInput{Name: name, Email: email, Password: "secret123"})
	require.NoError(t, err)
	return u
}

func (e *testEnv) assign(t *testing.T, roomID, tenantID uint) *models.Room {
	t.Helper()
	r, err := e.admin.AssignTenant(e.ctx, roomID, tenantID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return r
}
