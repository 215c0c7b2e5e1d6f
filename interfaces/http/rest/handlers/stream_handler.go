package handlers

import (
	"net/http"
	"strings"
	"time"

	"grapheditor/application/ports"
	"grapheditor/application/queries"
	"grapheditor/domain/core/aggregates"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Clients never send payloads; anything larger than a ping is dropped
	maxMessageSize = 1024
)

// StreamMessage is the frame pushed to view stream clients
type StreamMessage struct {
	Type string          `json:"type"`
	Data aggregates.View `json:"data"`
}

// StreamHandler upgrades GET /sessions/{sessionID}/stream to a websocket that
// receives the session view after every mutation
type StreamHandler struct {
	base
	upgrader websocket.Upgrader
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(deps Deps, allowedOrigins []string) *StreamHandler {
	return &StreamHandler{
		base: base{deps},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
	}
}

// Stream handles GET /sessions/{sessionID}/stream
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	result, err := h.QueryBus.Ask(r.Context(), queries.StreamViewQuery{SessionID: id})
	if err != nil {
		h.Errors.Handle(w, r, err)
		return
	}
	stream, ok := result.(*queries.ViewStream)
	if !ok {
		h.Errors.HandleStatus(w, r, http.StatusInternalServerError, "unexpected query result")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		stream.Subscription.Close()
		h.Logger.Warn("WebSocket upgrade failed", zap.String("sessionID", id), zap.Error(err))
		return
	}

	c := &streamClient{
		conn:   conn,
		sub:    stream.Subscription,
		logger: h.Logger.With(zap.String("sessionID", id)),
	}
	c.logger.Debug("View stream opened")

	go c.writePump(stream.Initial)
	go c.readPump()
}

type streamClient struct {
	conn   *websocket.Conn
	sub    ports.ViewSubscription
	logger *zap.Logger
}

// readPump only services control frames. It ends the subscription once the
// peer goes away, which in turn stops the write pump.
func (c *streamClient) readPump() {
	defer c.sub.Close()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("WebSocket read error", zap.Error(err))
			}
			return
		}
	}
}

func (c *streamClient) writePump(initial aggregates.View) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.sub.Close()
		c.conn.Close()
		c.logger.Debug("View stream closed")
	}()

	if !c.write(initial) {
		return
	}

	views := c.sub.Views()
	for {
		select {
		case view, ok := <-views:
			if !ok {
				// Session ended or the reader went away
				c.conn.SetWriteDeadline(time.Now().Add(writeWait))
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "stream closed"))
				return
			}
			if !c.write(view) {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.logger.Debug("Failed to send ping", zap.Error(err))
				return
			}
		}
	}
}

func (c *streamClient) write(view aggregates.View) bool {
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(StreamMessage{Type: "view", Data: view}); err != nil {
		c.logger.Warn("Failed to write view", zap.Error(err))
		return false
	}
	return true
}

// checkOrigin accepts requests without an Origin header, and any origin when
// the list contains "*"
func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || strings.EqualFold(a, origin) {
				return true
			}
		}
		return false
	}
}
