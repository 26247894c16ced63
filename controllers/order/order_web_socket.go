package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sph0ngl3/Pazarm/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connected tracking clients. Handlers register and unregister from their
// own goroutines while broadcasts run on request goroutines, so every
// access goes through wsMu.
var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

func registerClient(conn *websocket.Conn) {
	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()
}

func unregisterClient(conn *websocket.Conn) {
	wsMu.Lock()
	delete(wsClients, conn)
	wsMu.Unlock()
}

// GET /orders/ws
// Tracking screens subscribe here; every order create and status change
// is pushed to all connected clients.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	registerClient(conn)
	defer unregisterClient(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func broadcastOrderUpdate(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}
	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
