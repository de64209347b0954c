// server/internal/socket/hub.go
package socket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub manages the dashboard WebSocket clients watching the live
// attendance feed. Every persisted record is broadcast to all of them.
type Hub struct {
	clients map[*websocket.Conn]bool
	// mu guards clients; registration and broadcast run on different goroutines.
	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// Register adds a new client to the Hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
	log.Printf("WebSocket client registered (%d connected)", len(h.clients))
}

// Unregister removes a client from the Hub.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		log.Printf("WebSocket client unregistered (%d connected)", len(h.clients))
	}
}

// Broadcast sends a message to every connected client. A failed write
// is logged and the client dropped from future broadcasts; one slow or
// dead dashboard must not affect the rest.
func (h *Hub) Broadcast(message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket broadcast failed, dropping client: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
