package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"omufusion/internal/services"
)

var sessionUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS layer in front of the router.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	sessionWriteWait = 10 * time.Second
	sessionPingEvery = 30 * time.Second
)

// SessionEvents upgrades to a websocket and relays admin session events from
// the Redis channel. Every open client view sees sign-ins and sign-outs as
// they happen, so stale admin screens lock themselves without polling.
func SessionEvents(admin *services.AdminAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := sessionUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("[SESSION] [ERROR] websocket upgrade failed:", err)
			return
		}
		defer conn.Close()

		sub := admin.Subscribe(c.Request.Context())
		defer sub.Close()

		// Drain client frames so control messages are processed and a closed
		// peer is noticed.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ping := time.NewTicker(sessionPingEvery)
		defer ping.Stop()

		events := sub.Channel()
		for {
			select {
			case msg, ok := <-events:
				if !ok {
					return
				}
				conn.SetWriteDeadline(time.Now().Add(sessionWriteWait))
				if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
					return
				}
			case <-ping.C:
				conn.SetWriteDeadline(time.Now().Add(sessionWriteWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			case <-c.Request.Context().Done():
				return
			}
		}
	}
}
