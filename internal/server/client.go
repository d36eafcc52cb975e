package server

import (
	"log"

	"github.com/gorilla/websocket"
)

// Client represents a single spectator WebSocket connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	ID   string // Unique identifier for the spectator
}

// ReadPump handles incoming messages from the WebSocket connection.
func (c *Client) ReadPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		_, messageBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Unexpected close error from spectator %s: %v", c.ID, err)
			}
			break
		}

		msg, err := decodeMessage(messageBytes)
		if err != nil {
			log.Printf("Error unmarshalling message from spectator %s: %v", c.ID, err)
			continue
		}

		select {
		case c.hub.processMessage <- clientMessage{client: c, message: msg}:
		case <-c.hub.done:
			return
		}
	}
}

// WritePump handles outgoing messages to the WebSocket connection.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Write error to spectator %s: %v", c.ID, err)
			break
		}
	}
}
