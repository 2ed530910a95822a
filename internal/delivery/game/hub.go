package game

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"gridduel/internal/domain/game"
	"gridduel/internal/domain/match"
)

const writeWait = 5 * time.Second

// Conn is the subset of *websocket.Conn the hub writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

type client struct {
	mu   sync.Mutex
	conn Conn
}

func (c *client) write(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

// Hub fans frames out to the seated connections. It implements the
// processor's Broadcaster.
type Hub struct {
	log     *zap.SugaredLogger
	mu      sync.RWMutex
	clients map[match.Side]*client
}

func NewHub(log *zap.SugaredLogger) *Hub {
	return &Hub{
		log:     log,
		clients: make(map[match.Side]*client, 2),
	}
}

func (h *Hub) Register(side match.Side, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.clients[side]; ok && old.conn != conn {
		_ = old.conn.Close()
	}
	h.clients[side] = &client{conn: conn}
}

// Unregister removes conn from side unless a newer connection took its place.
func (h *Hub) Unregister(side match.Side, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[side]; ok && c.conn == conn {
		delete(h.clients, side)
	}
}

func (h *Hub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Send writes v to side. A failed write closes and drops the connection.
func (h *Hub) Send(side match.Side, v interface{}) {
	h.mu.RLock()
	c, ok := h.clients[side]
	h.mu.RUnlock()
	if !ok {
		return
	}
	if err := c.write(v); err != nil {
		h.log.Errorf("write to side %s failed: %v", side, err)
		_ = c.conn.Close()
		h.Unregister(side, c.conn)
	}
}

func (h *Hub) Broadcast(v interface{}) {
	for _, side := range []match.Side{match.SideA, match.SideB} {
		h.Send(side, v)
	}
}

// CloseAll closes every seated connection, ending their read loops.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for side, c := range h.clients {
		_ = c.conn.Close()
		delete(h.clients, side)
	}
}

func (h *Hub) BroadcastState(snap match.StateSnapshot) {
	h.Broadcast(game.NewUpdate(snap))
}

func (h *Hub) BroadcastStart() {
	h.Broadcast(game.NewStartGame())
}

func (h *Hub) SendPlacement(side match.Side, roster []match.Unit) {
	h.Send(side, game.NewPlacementUpdate(roster))
}

func (h *Hub) SendRejected(side match.Side, kind, message string) {
	h.Send(side, game.NewError(kind, message))
}
