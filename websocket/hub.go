package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client represents one connected manager dashboard
type Client struct {
	Hub      *Hub
	ID       string
	TenantID string
	Conn     *websocket.Conn
	Send     chan []byte
}

// Hub fans review events out to the manager dashboards of the owning tenant.
// Clients of other tenants never see the event.
type Hub struct {
	clients map[string]*Client

	Broadcast  chan *Event
	Register   chan *Client
	Unregister chan *Client

	mu sync.RWMutex
}

// Event is a dashboard notification
type Event struct {
	Type      string      `json:"type"`
	TenantID  string      `json:"tenant_id"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// Event types pushed to manager dashboards
const (
	EventReviewCreated  = "review_created"
	EventReviewResolved = "review_resolved"
)

// NewHub creates a notification hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Broadcast:  make(chan *Event, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			log.Printf("🔌 Dashboard connected: id=%s tenant=%s", client.ID, client.TenantID)

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()
			log.Printf("🔌 Dashboard disconnected: id=%s tenant=%s", client.ID, client.TenantID)

		case event := <-h.Broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Notify queues a tenant-scoped event without blocking the caller
func (h *Hub) Notify(eventType, tenantID string, data interface{}) {
	event := &Event{
		Type:      eventType,
		TenantID:  tenantID,
		Timestamp: time.Now(),
		Data:      data,
	}
	select {
	case h.Broadcast <- event:
	default:
		log.Printf("⚠️ Notification channel full, dropping %s for tenant %s", eventType, tenantID)
	}
}

// broadcastEvent sends an event to every dashboard of the owning tenant
func (h *Hub) broadcastEvent(event *Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Error marshaling event: %v", err)
		return
	}

	for id, client := range h.clients {
		if client.TenantID != event.TenantID {
			continue
		}
		select {
		case client.Send <- data:
		default:
			close(client.Send)
			delete(h.clients, id)
		}
	}
}
