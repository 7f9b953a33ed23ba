package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rentdesk/constants"
	"rentdesk/errors"
	"rentdesk/services/logger"
	"rentdesk/services/notification"
	"rentdesk/types"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/olahol/melody"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenAuth map[string]uint

func (a tokenAuth) Authenticate(ctx context.Context, token string) (*types.Identity, error) {
	id, ok := a[token]
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid or expired token", nil)
	}
	return &types.Identity{UserID: id, Role: constants.RoleTenant}, nil
}

func newWSServer(t *testing.T) (*httptest.Server, *melody.Melody) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	m := melody.New()
	ws := NewWSController(m, tokenAuth{"t1": 1, "t2": 2}, logger.NewNop())

	r := gin.New()
	r.GET("/ws", ws.Connect)
	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		m.Close()
		srv.Close()
	})
	return srv, m
}

func dial(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWSConnectRejectsMissingToken(t *testing.T) {
	srv, _ := newWSServer(t)

	resp, err := http.Get(srv.URL + "/ws")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/ws?token=forged")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestNotifyUserReachesOnlyThatUser(t *testing.T) {
	srv, m := newWSServer(t)
	c1 := dial(t, srv, "t1")
	c2 := dial(t, srv, "t2")

	require.Eventually(t, func() bool { return m.Len() == 2 }, time.Second, 10*time.Millisecond)

	notifier := notification.NewMelodyService(m)
	require.NoError(t, notifier.NotifyUser(2, "for two"))

	c2.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := c2.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "for two", string(data))

	c1.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err = c1.ReadMessage()
	assert.Error(t, err)
}
