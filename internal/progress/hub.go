package progress

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"campaign-server/internal/observability"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 64
)

// Hub streams progress events to WebSocket clients. Each client only
// receives events of its own company.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *observability.Logger

	mu      sync.RWMutex
	clients map[uuid.UUID]map[*client]struct{}
}

type client struct {
	hub       *Hub
	companyID uuid.UUID
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

// NewHub creates a hub accepting connections from allowedOrigin. An empty
// origin accepts any.
func NewHub(allowedOrigin string, logger *observability.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowedOrigin == "" || origin == "" || origin == allowedOrigin
			},
		},
		logger:  logger,
		clients: make(map[uuid.UUID]map[*client]struct{}),
	}
}

// ServeWS upgrades the request and subscribes the connection to the company's events
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, companyID uuid.UUID) {
	ctx := observability.WithFields(r.Context(),
		observability.Field{Key: "company_id", Value: companyID.String()},
	)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error(ctx, "failed to upgrade progress websocket", err)
		return
	}

	c := &client{hub: h, companyID: companyID, conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(c)

	go c.writePump()
	go c.readPump()
}

// Notify sends the event to every client of the event's company. Clients
// whose buffer is full are disconnected.
func (h *Hub) Notify(ctx context.Context, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error(ctx, "failed to marshal progress event", err)
		return
	}

	h.mu.RLock()
	var slow []*client
	for c := range h.clients[event.CompanyID] {
		select {
		case c.send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn(ctx, "dropping slow progress client")
		h.unregister(c)
	}
}

// ClientCount reports the connected clients of a company
func (h *Hub) ClientCount(companyID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[companyID])
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.companyID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[c.companyID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if set, ok := h.clients[c.companyID]; ok {
		if _, ok := set[c]; ok {
			delete(set, c)
			if len(set) == 0 {
				delete(h.clients, c.companyID)
			}
		}
	}
	h.mu.Unlock()
	c.closeOnce.Do(func() { close(c.send) })
}

// readPump only consumes control frames; clients do not send data
func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
