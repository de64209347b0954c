// server/internal/api/handlers/websocket_handler.go
package handlers

import (
	"log"
	"net/http"
	"time"

	"hadirkoe-api-server/config"
	"hadirkoe-api-server/internal/auth"
	"hadirkoe-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Maximum wait between client heartbeats before the connection is dropped.
const pongWait = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	Hub  *socket.Hub
	Auth config.AuthConfig
}

// ServeWs upgrades the connection and joins the live attendance feed.
// When auth.requireToken is on, the session token is expected as a
// query parameter, since browsers cannot set headers on WebSocket dials.
// Hardening needs a configured secret, same as the form routes.
func (h *WebSocketHandler) ServeWs(c *gin.Context) {
	if h.Auth.RequireToken && h.Auth.TokenSecret != "" {
		tokenString := c.Query("token")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token is required"})
			return
		}
		if _, err := auth.ParseSessionToken([]byte(h.Auth.TokenSecret), tokenString); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	h.Hub.Register(conn)

	defer func() {
		h.Hub.Unregister(conn)
		conn.Close()
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPingHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Read loop: the feed is one-way, but reading drains control frames
	// and detects the close.
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Unexpected close error: %v", err)
			}
			break
		}
	}
}
