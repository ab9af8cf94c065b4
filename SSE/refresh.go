package SSE

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Refresh keys name the cached views a write invalidates. Workflows
// broadcast the key of whatever they changed; connected clients re-fetch
// that view instead of mutating anything in place.
const (
	KeyClients      = "clients"
	KeyAppointments = "appointments"
	KeySessions     = "sessions"
	KeyPackages     = "packages"
	KeyPayments     = "payments"
)

// RefreshHub manages SSE connections and pushes invalidation keys to all
// connected clients.
type RefreshHub struct {
	clients map[chan string]bool
	mu      sync.Mutex
}

func NewRefreshHub() *RefreshHub {
	return &RefreshHub{
		clients: make(map[chan string]bool),
	}
}

func (h *RefreshHub) Register(client chan string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
}

func (h *RefreshHub) Unregister(client chan string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client)
	}
}

// Broadcast sends an invalidation key to all registered clients. A client
// that cannot take the message within a second is dropped.
func (h *RefreshHub) Broadcast(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client <- key:
		case <-time.After(1 * time.Second):
			delete(h.clients, client)
			close(client)
		}
	}
}

var Hub = NewRefreshHub()

func RequestSSE(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	clientChan := make(chan string)

	Hub.Register(clientChan)
	defer Hub.Unregister(clientChan)
	fmt.Fprintf(c.Writer, "data: %s\n\n", "connected")
	c.Writer.Flush()

	for {
		select {
		case key := <-clientChan:
			fmt.Fprintf(c.Writer, "data: %s\n\n", key)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
