package server

import (
	"NutriAssist/internal/locales"
	"NutriAssist/internal/utility"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// chatSocketHandler keeps a persistent chat connection open for a session.
// Inbound frames use the same shape as POST /messages; replies and profile
// updates are pushed to every socket of the session.
func (s *Server) chatSocketHandler(c echo.Context) error {
	sess := currentSession(c)
	logger := requestLogger(c)

	// 1. Upgrade HTTP request to WebSocket
	ws, err := utility.Upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	// 2. Register the socket under its session
	client := s.hub.Register(sess.ID, ws)
	defer s.hub.Unregister(sess.ID, client)

	// 3. Drop the socket when the session expires or is deleted
	closed := make(chan struct{})
	defer close(closed)
	go func() {
		select {
		case <-sess.Done():
			_ = ws.Close()
		case <-closed:
		}
	}()

	// 4. Listen loop
	ctx := c.Request().Context()
	for {
		var req messageRequest
		if err := ws.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn().Err(err).Msg("chatSocketHandler: read failed")
			}
			break
		}

		loc := resolveLocale(c, req.Locale, sess.Locale())
		text, err := messageText(loc, req)
		if err != nil {
			_ = client.WriteJSON(socketEvent{Type: "error", Error: err.Error()})
			continue
		}
		if !s.allowMessage(c, sess) {
			_ = client.WriteJSON(socketEvent{Type: "error", Error: locales.Sprintf(loc, locales.MsgTooManyTurns)})
			continue
		}

		reply, history := sess.Send(ctx, loc, text)
		s.hub.Broadcast(sess.ID, socketEvent{Type: "reply", Reply: reply, History: history})
	}

	return nil
}
