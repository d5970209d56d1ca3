package inspect

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// EventType identifies a websocket event.
type EventType string

const (
	EventRender   EventType = "render"
	EventError    EventType = "error"
	EventNavigate EventType = "navigate"
)

// Event is sent to websocket clients.
type Event struct {
	Type       EventType `json:"type"`
	Generation uint64    `json:"generation,omitempty"`
	Nodes      int       `json:"nodes,omitempty"`
	Roots      int       `json:"roots,omitempty"`
	DurationUS int64     `json:"durationUs,omitempty"`
	Route      string    `json:"route,omitempty"`
	Error      string    `json:"error,omitempty"`
}

const writeWait = time.Second

// Broadcaster fans events out to websocket clients.
type Broadcaster struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	sendMu   sync.Mutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewBroadcaster creates a Broadcaster with no clients.
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // dev tool, any origin
			},
		},
		logger: logger,
	}
}

// HandleWebSocket upgrades the request and keeps the client registered
// until it disconnects.
func (b *Broadcaster) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := b.upgrader.Upgrade(w, req, nil)
	if err != nil {
		b.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	b.mu.Lock()
	b.clients[conn] = true
	b.mu.Unlock()
	b.logger.Debug("inspector client connected", "remote", req.RemoteAddr)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	b.remove(conn)
}

// Send encodes ev and writes it to every client. Clients that fail to
// receive it are dropped.
func (b *Broadcaster) Send(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		b.logger.Error("encode event", "error", err)
		return
	}

	b.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(b.clients))
	for client := range b.clients {
		clients = append(clients, client)
	}
	b.mu.RUnlock()

	b.sendMu.Lock()
	defer b.sendMu.Unlock()
	for _, client := range clients {
		client.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			b.remove(client)
		}
	}
}

func (b *Broadcaster) remove(conn *websocket.Conn) {
	b.mu.Lock()
	_, ok := b.clients[conn]
	delete(b.clients, conn)
	b.mu.Unlock()
	if ok {
		conn.Close()
	}
}

// ClientCount returns the number of connected clients.
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Close closes all client connections.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for client := range b.clients {
		client.Close()
		delete(b.clients, client)
	}
}
