package controllers

import (
	"rentdesk/middleware"
	"rentdesk/response"
	"rentdesk/services/logger"
	"rentdesk/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// WSController upgrades authenticated clients to a websocket that receives
// payment and rent-due notifications.
type WSController struct {
	m      *melody.Melody
	auth   middleware.Authenticator
	logger logger.Logger
}

func NewWSController(m *melody.Melody, auth middleware.Authenticator, log logger.Logger) *WSController {
	ws := &WSController{m: m, auth: auth, logger: log}
	m.HandleConnect(func(s *melody.Session) {
		if id, ok := s.Get(notification.SessionUserKey); ok {
			log.Debug("websocket connected for user %v", id)
		}
	})
	m.HandleDisconnect(func(s *melody.Session) {
		if id, ok := s.Get(notification.SessionUserKey); ok {
			log.Debug("websocket closed for user %v", id)
		}
	})
	return ws
}

// Connect accepts the token from ?token= since browsers cannot set headers
// on websocket upgrades.
func (w *WSController) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = middleware.BearerToken(c)
	}
	if token == "" {
		response.Unauthorized(c)
		return
	}
	identity, err := w.auth.Authenticate(c.Request.Context(), token)
	if err != nil {
		response.AppError(c, err)
		return
	}
	keys := map[string]interface{}{notification.SessionUserKey: identity.UserID}
	if err := w.m.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		w.logger.Error("websocket upgrade for user %d: %v", identity.UserID, err)
	}
}
