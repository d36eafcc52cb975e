package server

import (
	"encoding/json"
	"log"
	"sync"

	"wizard-game/internal/protocol"
)

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

// outbound is an encoded event on its way to every spectator.
type outbound struct {
	msgType string
	data    []byte
}

const broadcastBuffer = 256

// Hub fans match events out to connected spectators. It remembers the match
// start and the latest standings so late joiners can catch up.
type Hub struct {
	clients        map[*Client]bool
	broadcast      chan outbound
	processMessage chan clientMessage
	register       chan *Client
	unregister     chan *Client
	done           chan struct{}
	clientMu       sync.RWMutex
	snapshotMu     sync.RWMutex
	matchStart     []byte
	standings      []byte
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		clients:        make(map[*Client]bool),
		broadcast:      make(chan outbound, broadcastBuffer),
		processMessage: make(chan clientMessage),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		done:           make(chan struct{}),
	}
}

// Publish encodes a match event and queues it for every spectator. It never
// blocks the match: when the queue is full the event is dropped.
func (h *Hub) Publish(ev protocol.Event) {
	data, err := protocol.Encode(ev)
	if err != nil {
		log.Printf("Error encoding %s event for match %s: %v", ev.Type, ev.MatchID, err)
		return
	}
	select {
	case h.broadcast <- outbound{msgType: ev.Type, data: data}:
	default:
		log.Printf("Spectator queue full, dropping %s event for match %s", ev.Type, ev.MatchID)
	}
}

// Run starts the Hub's main loop. It returns after Close.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			log.Printf("Spectator %s (%s) connected", client.ID, client.conn.RemoteAddr())
			h.clientMu.Lock()
			h.clients[client] = true
			h.clientMu.Unlock()
			for _, msg := range h.snapshotMessages() {
				h.sendToClient(client, msg)
			}

		case client := <-h.unregister:
			h.removeClient(client)

		case out := <-h.broadcast:
			h.remember(out)
			h.clientMu.RLock()
			targets := make([]*Client, 0, len(h.clients))
			for client := range h.clients {
				targets = append(targets, client)
			}
			h.clientMu.RUnlock()
			for _, client := range targets {
				h.sendToClient(client, out.data)
			}

		case clientMsg := <-h.processMessage:
			h.handleMessage(clientMsg.client, clientMsg.message)

		case <-h.done:
			h.clientMu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientMu.Unlock()
			return
		}
	}
}

// Close stops Run and disconnects every spectator.
func (h *Hub) Close() {
	close(h.done)
}

// ClientCount returns the number of connected spectators.
func (h *Hub) ClientCount() int {
	h.clientMu.RLock()
	defer h.clientMu.RUnlock()
	return len(h.clients)
}

// Standings returns the latest round_end or game_over message, or nil before
// the first round is scored.
func (h *Hub) Standings() []byte {
	h.snapshotMu.RLock()
	defer h.snapshotMu.RUnlock()
	return h.standings
}

func (h *Hub) remember(out outbound) {
	h.snapshotMu.Lock()
	defer h.snapshotMu.Unlock()
	switch out.msgType {
	case protocol.MatchStart:
		h.matchStart = out.data
		h.standings = nil
	case protocol.RoundEnd, protocol.GameOver:
		h.standings = out.data
	}
}

func (h *Hub) snapshotMessages() [][]byte {
	h.snapshotMu.RLock()
	defer h.snapshotMu.RUnlock()
	var msgs [][]byte
	if h.matchStart != nil {
		msgs = append(msgs, h.matchStart)
	}
	if h.standings != nil {
		msgs = append(msgs, h.standings)
	}
	return msgs
}

// handleMessage processes a message received from a spectator.
func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	switch msg.Type {
	case "ping":
		pongMsg, _ := protocol.NewMessage("pong", nil)
		h.sendToClient(client, pongMsg)
	default:
		log.Printf("Received unsupported message type '%s' from spectator %s", msg.Type, client.ID)
		h.sendErrorToClient(client, "Spectators can only watch.")
	}
}

func (h *Hub) removeClient(client *Client) {
	h.clientMu.Lock()
	defer h.clientMu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		log.Printf("Spectator %s disconnected", client.ID)
	}
}

// sendToClient does a non-blocking send; a spectator that cannot keep up is dropped.
// Only called from the Run goroutine.
func (h *Hub) sendToClient(client *Client, message []byte) {
	h.clientMu.RLock()
	_, connected := h.clients[client]
	h.clientMu.RUnlock()
	if !connected {
		return
	}
	select {
	case client.send <- message:
	default:
		log.Printf("Failed to send message to spectator %s (channel full), dropping.", client.ID)
		h.removeClient(client)
	}
}

// sendErrorToClient sends a generic error message to a specific client.
func (h *Hub) sendErrorToClient(client *Client, errorMsg string) {
	msgBytes, err := protocol.NewMessage("error", protocol.ErrorPayload{Message: errorMsg})
	if err != nil {
		log.Printf("Error creating error message for spectator %s: %v", client.ID, err)
		return
	}
	h.sendToClient(client, msgBytes)
}

// decodeMessage parses a raw client frame.
func decodeMessage(data []byte) (protocol.Message, error) {
	var msg protocol.Message
	err := json.Unmarshal(data, &msg)
	return msg, err
}
