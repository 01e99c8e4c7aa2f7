package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hirehub/interview-signaling/internal/matchmaking"
	"github.com/hirehub/interview-signaling/internal/middleware"
	"github.com/hirehub/interview-signaling/internal/models"
	"github.com/hirehub/interview-signaling/internal/presence"
	"github.com/hirehub/interview-signaling/internal/relay"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 512 * 1024
	sendBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin checking is handled by middleware
		return true
	},
}

// WSHandler owns the signaling endpoint: it upgrades connections and
// feeds their events into the presence directory, relay and queue.
type WSHandler struct {
	dir       *presence.Directory
	relay     *relay.Relay
	queue     *matchmaking.Queue
	jwtSecret string
	log       *zap.Logger
}

func NewWSHandler(dir *presence.Directory, r *relay.Relay, q *matchmaking.Queue, jwtSecret string, log *zap.Logger) *WSHandler {
	return &WSHandler{dir: dir, relay: r, queue: q, jwtSecret: jwtSecret, log: log}
}

// wsClient is one live connection. Its uuid is the connection handle
// the presence directory stores; the handle outlives nothing — a
// reconnect gets a fresh one.
type wsClient struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	log  *zap.Logger
}

func (c *wsClient) ID() string { return c.id }

// Send marshals the message and enqueues it without blocking. A full
// buffer means a slow consumer; the frame is dropped, matching the
// at-most-once contract of every server push.
func (c *wsClient) Send(msg models.ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.log.Error("failed to marshal message", zap.String("event", msg.Event), zap.Error(err))
		return
	}
	select {
	case c.send <- data:
	default:
		c.log.Warn("send buffer full, dropping frame",
			zap.String("handle", c.id),
			zap.String("event", msg.Event))
	}
}

// Handle upgrades the HTTP request and runs the connection's pumps.
// A token query parameter, when present, must be a valid job-board
// JWT; identity binding still happens via the register_user event.
func (h *WSHandler) Handle(c *gin.Context) {
	if token := c.Query("token"); token != "" {
		if _, err := middleware.ParseToken(h.jwtSecret, token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error("failed to upgrade connection", zap.Error(err))
		return
	}

	client := &wsClient{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		log:  h.log,
	}

	h.log.Info("connection established", zap.String("handle", client.id))

	go client.writePump()
	go h.readPump(client)
}

func (h *WSHandler) readPump(c *wsClient) {
	defer func() {
		c.conn.Close()
		// Disconnect composes presence eviction with queue cleanup.
		// A stale handle (user already reconnected elsewhere) resolves
		// to no user and nothing is evicted.
		if userID, ok := h.dir.Unregister(c.id); ok {
			h.queue.Leave(userID)
		}
		h.log.Info("connection closed", zap.String("handle", c.id))
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn("websocket error", zap.String("handle", c.id), zap.Error(err))
			}
			break
		}
		h.dispatch(c, raw)
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
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
