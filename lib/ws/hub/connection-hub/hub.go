package connectionhub

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"

	wsmodels "ats-backend/models/ws"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	Broadcast(entity, action, entityID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]*clientSession{},
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]*clientSession //map[userID]
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(userID, conn)
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	delete(i.clients, userID)
	sess.stop()
}

// Broadcast pushes a change notification to every connected client. Clients
// that are not connected simply miss the event and refetch on next load.
func (i *impl) Broadcast(entity, action, entityID string) {
	msg := wsmodels.ServerMessage{
		Entity:   entity,
		Action:   action,
		EntityID: entityID,
		Time:     time.Now().Format("02.01.2006 15:04:05"),
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, sess := range i.clients {
		sess.send(msg)
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil {
		return false
	}
	return true
}
