package controllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"unicart/config"
	"unicart/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}
var clients = make(map[*websocket.Conn]bool)
var mu sync.Mutex

// HandleWebSocket keeps a connection open for admin dashboards; they receive
// newOrder and batchStatus events without refreshing.
func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			config.GetLogger().WithError(err).Warn("websocket upgrade failed")
			return
		}
		defer conn.Close()

		mu.Lock()
		clients[conn] = true
		mu.Unlock()

		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				mu.Lock()
				delete(clients, conn)
				mu.Unlock()
				break
			}
		}
	}
}

// NotifyNewOrder pushes a "newOrder" event with the full order.
func NotifyNewOrder(o models.Order) {
	mu.Lock()
	defer mu.Unlock()
	sendMessageToAllClients(models.Notification{
		Event:   "newOrder",
		Payload: o,
	})
}

// NotifyBatchStatus pushes a "batchStatus" event whenever a batch is
// created, toggled or advanced.
func NotifyBatchStatus(b models.OrderBatch) {
	mu.Lock()
	defer mu.Unlock()
	sendMessageToAllClients(models.Notification{
		Event:   "batchStatus",
		Payload: b,
	})
}

// sendMessageToAllClients must be called with mu held.
func sendMessageToAllClients(message models.Notification) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		config.GetLogger().WithError(err).Warn("error marshaling websocket message")
		return
	}

	for client := range clients {
		err := client.WriteMessage(websocket.TextMessage, messageBytes)
		if err != nil {
			client.Close()
			delete(clients, client)
		}
	}
}
