package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/johpaz/apiGestion-api/models"
)

// Event kinds pushed over the websocket feed.
const (
	EventAlertCreated = "alerta.creada"
)

// AlertEvent is the wire shape of a realtime alert notification.
type AlertEvent struct {
	Kind  string        `json:"kind"`
	Alert *models.Alert `json:"alerta"`
}

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub fans fired alerts out to the owner's connected websocket
// clients. Alerts are private, so events only ever reach the owner's own
// connections.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	if c.Conn != nil {
		_ = c.Conn.Close()
	}
}

// ConnectionsFor reports how many sockets the user currently has open.
func (h *RealtimeHub) ConnectionsFor(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// BroadcastAlert pushes a freshly created alert to the owner's connections.
// Write failures are ignored; the read loop tears down dead clients.
func (h *RealtimeHub) BroadcastAlert(userID uint, alert *models.Alert) {
	msg, err := json.Marshal(AlertEvent{Kind: EventAlertCreated, Alert: alert})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
