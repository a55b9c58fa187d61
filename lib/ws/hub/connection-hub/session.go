package connectionhub

import (
	"context"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"

	wsmodels "ats-backend/models/ws"
)

type clientSession struct {
	userID string
	conn   *websocket.Conn

	// Outbound messages, buffered; dropped when the buffer is full so one
	// slow client never blocks a broadcast.
	sendCh chan wsmodels.ServerMessage
	stop   func()
}

func newSession(userID string, conn *websocket.Conn) *clientSession {
	ctx, cancel := context.WithCancel(context.Background())
	sess := &clientSession{
		userID: userID,
		conn:   conn,
		sendCh: make(chan wsmodels.ServerMessage, 16),
		stop:   cancel,
	}
	go sess.writePump(ctx)
	return sess
}

func (s *clientSession) send(msg wsmodels.ServerMessage) {
	select {
	case s.sendCh <- msg:
	default:
		log.WithField("user_id", s.userID).Warn("notification dropped, send buffer is full")
	}
}

func (s *clientSession) writePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-s.sendCh:
			if err := s.conn.WriteJSON(msg); err != nil {
				log.WithError(err).WithField("user_id", s.userID).Debug("notification write error")
				return
			}
		}
	}
}
