package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"crypto-volatility-lab/internal/domain"
	"crypto-volatility-lab/internal/observability"
	"crypto-volatility-lab/internal/session"
)

const writeWait = 5 * time.Second

// Hub pushes regeneration updates to dashboard WebSocket clients,
// grouped by session ID.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *log.Logger

	mu      sync.Mutex
	clients map[string]map[*websocket.Conn]bool
}

var _ session.Notifier = (*Hub)(nil)

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Pages and WS are served from the same origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:  logger,
		clients: make(map[string]map[*websocket.Conn]bool),
	}
}

// SeriesUpdate is the JSON message pushed after every regeneration.
// Clients refetch series data and chart images on receipt.
type SeriesUpdate struct {
	Type        string          `json:"type"`
	SessionID   string          `json:"session_id"`
	SeriesID    string          `json:"series_id"`
	Params      ParamsPayload   `json:"params"`
	Metrics     *MetricsPayload `json:"metrics,omitempty"`
	GeneratedAt int64           `json:"generated_at"`
}

// SeriesUpdated broadcasts the new series to every client of the session.
func (h *Hub) SeriesUpdated(sessionID string, rec *domain.SeriesRecord, m *domain.Metrics) {
	msg := SeriesUpdate{
		Type:        "series_updated",
		SessionID:   sessionID,
		SeriesID:    rec.SeriesID,
		Params:      toParamsPayload(rec.Params),
		Metrics:     toMetricsPayload(m),
		GeneratedAt: rec.GeneratedAt,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients[sessionID] {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Printf("WebSocket write failed for session %s: %v", sessionID, err)
			h.dropLocked(sessionID, conn)
			continue
		}
		observability.RecordWSPush()
	}
}

// HandleWS upgrades the connection and keeps it registered until the
// client disconnects. Incoming messages are discarded.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request, sessionID string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	if h.clients[sessionID] == nil {
		h.clients[sessionID] = make(map[*websocket.Conn]bool)
	}
	h.clients[sessionID][conn] = true
	h.mu.Unlock()
	observability.RecordWSConnect()

	// Read loop: detects disconnects, drops everything the client sends.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	h.dropLocked(sessionID, conn)
	h.mu.Unlock()
}

// ClientCount reports the number of connected clients across all sessions.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for _, conns := range h.clients {
		n += len(conns)
	}
	return n
}

// dropLocked closes and unregisters a connection. Caller holds h.mu.
func (h *Hub) dropLocked(sessionID string, conn *websocket.Conn) {
	if _, ok := h.clients[sessionID][conn]; !ok {
		return
	}
	delete(h.clients[sessionID], conn)
	if len(h.clients[sessionID]) == 0 {
		delete(h.clients, sessionID)
	}
	conn.Close()
	observability.RecordWSDisconnect()
}
