package ws

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// Hub maintains the set of active clients and routes server-side events
// (new messages, notifications) to the connections of a given user. REST
// stays the source of truth; the hub only mirrors writes that already
// committed.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// Map to quickly find clients by username
	userClients map[string][]*Client

	// Mutex to protect the userClients map
	mutex sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Register:    make(chan *Client),
		Unregister:  make(chan *Client),
		clients:     make(map[*Client]bool),
		userClients: make(map[string][]*Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.addClient(client)
		case client := <-h.Unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mutex.Lock()
	h.clients[client] = true
	h.userClients[client.Username] = append(h.userClients[client.Username], client)
	count := len(h.userClients[client.Username])
	h.mutex.Unlock()

	logrus.Infof("User %s connected. Total connections for user: %d", client.Username, count)
}

func (h *Hub) removeClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)
	h.untrackClient(client)
}

// untrackClient drops the client from the per-user index. Callers must hold
// h.mutex.
func (h *Hub) untrackClient(client *Client) {
	userConns := h.userClients[client.Username]
	for i, conn := range userConns {
		if conn == client {
			h.userClients[client.Username] = append(userConns[:i], userConns[i+1:]...)
			break
		}
	}

	if len(h.userClients[client.Username]) == 0 {
		delete(h.userClients, client.Username)
		logrus.Infof("User %s disconnected", client.Username)
	}
}

// SendToUser sends a raw payload to every active connection of the user.
// Connections whose buffer is full are dropped from both indexes so a later
// publish never hits a closed channel.
func (h *Hub) SendToUser(username string, message []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	conns := h.userClients[username]
	if len(conns) == 0 {
		return
	}

	var kept []*Client
	for _, client := range conns {
		select {
		case client.Send <- message:
			kept = append(kept, client)
		default:
			close(client.Send)
			delete(h.clients, client)
			logrus.Warnf("Dropping stalled ws connection for user %s", username)
		}
	}

	if len(kept) == 0 {
		delete(h.userClients, username)
	} else {
		h.userClients[username] = kept
	}
}

// PublishToUser marshals the event and delivers it to the user. It satisfies
// the services.EventPublisher interface.
func (h *Hub) PublishToUser(username string, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		logrus.Errorf("Failed to marshal ws event for %s: %v", username, err)
		return
	}
	h.SendToUser(username, payload)
}

// IsUserOnline checks if a user has any active WebSocket connection.
func (h *Hub) IsUserOnline(username string) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	clients, ok := h.userClients[username]
	return ok && len(clients) > 0
}
