package server

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/gravitas-015/hexgrid/hex"
	"github.com/gravitas-015/hexgrid/internal/network"
	"github.com/gravitas-015/hexgrid/point"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

// Connection represents a WebSocket connection to a viewer client
type Connection struct {
	id     string
	ws     *websocket.Conn
	server *Server
	logger *zap.Logger

	// Buffered channel for outbound messages
	send chan []byte

	closeOnce sync.Once
}

// NewConnection creates a connection around an upgraded socket
func NewConnection(ws *websocket.Conn, server *Server) *Connection {
	id := uuid.NewString()
	return &Connection{
		id:     id,
		ws:     ws,
		server: server,
		logger: server.logger.With(zap.String("conn_id", id)),
		send:   make(chan []byte, 256),
	}
}

// Handle manages the connection lifecycle: it starts the write pump,
// greets the client and blocks reading until the peer goes away.
func (c *Connection) Handle() {
	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go c.writePump()
	c.sendWelcome()
	c.readPump() // Blocking
}

// readPump pumps messages from the WebSocket connection to the handlers
func (c *Connection) readPump() {
	defer c.Close()

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket read error", zap.Error(err))
			}
			break
		}

		var clientMsg network.ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			c.logger.Debug("failed to parse client message", zap.Error(err))
			c.SendError(network.ErrCodeInvalidMessage, "failed to parse message")
			continue
		}

		c.handleMessage(&clientMsg)
	}
}

// writePump pumps messages from the send channel to the WebSocket
// connection and keeps the peer alive with periodic pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				c.logger.Debug("websocket write error", zap.Error(err))
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.server.ctx.Done():
			// Server shutting down
			return
		}
	}
}

// handleMessage routes messages to appropriate handlers
func (c *Connection) handleMessage(msg *network.ClientMessage) {
	c.logger.Debug("received message", zap.String("type", msg.Type))

	switch msg.Type {
	case network.MsgTypeHexAt:
		c.handleHexAt(msg.Payload)

	case network.MsgTypeHexInfo:
		c.handleHexInfo(msg.Payload)

	case network.MsgTypeGridShape:
		c.handleGridShape(msg.Payload)

	case network.MsgTypePing:
		c.handlePing()

	default:
		c.SendError(network.ErrCodeUnknownType, fmt.Sprintf("unknown message type %q", msg.Type))
	}
}

// sendWelcome greets a fresh connection with the grid parameters
func (c *Connection) sendWelcome() {
	f := c.server.factory
	c.SendMessage(&network.ServerMessage{
		Type: network.MsgTypeWelcome,
		Payload: network.WelcomePayload{
			ConnectionID: c.id,
			Orientation:  f.Orientation().String(),
			Size:         f.Size(),
			HexCount:     c.server.grid.Len(),
		},
	})
}

// handleHexAt answers which hex contains a pixel-space point
func (c *Connection) handleHexAt(payload json.RawMessage) {
	var req network.HexAtPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		c.SendError(network.ErrCodeInvalidMessage, "invalid hex_at payload")
		return
	}

	cell, _ := c.server.grid.HexAt(point.New(req.X, req.Y))
	c.SendMessage(&network.ServerMessage{
		Type:    network.MsgTypeHex,
		Payload: c.server.hexPayload(cell),
	})
}

// handleHexInfo answers with the full geometry of a hex
func (c *Connection) handleHexInfo(payload json.RawMessage) {
	var req network.HexInfoPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		c.SendError(network.ErrCodeInvalidMessage, "invalid hex_info payload")
		return
	}

	h := c.server.factory.Hex(req.X, req.Y)
	center := h.ToPoint()
	corners := h.Corners()
	cornerPts := make([]network.PointPayload, len(corners))
	for i, p := range corners {
		cornerPts[i] = network.PointPayload{X: p.X, Y: p.Y}
	}

	c.SendMessage(&network.ServerMessage{
		Type: network.MsgTypeHexDetails,
		Payload: network.HexDetailsPayload{
			X:       h.X,
			Y:       h.Y,
			Z:       h.Z,
			Center:  network.PointPayload{X: center.X, Y: center.Y},
			Corners: cornerPts,
			Width:   h.Width(),
			Height:  h.Height(),
		},
	})
}

// handleGridShape builds a requested shape and returns its cells
func (c *Connection) handleGridShape(payload json.RawMessage) {
	var req network.GridShapePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		c.SendError(network.ErrCodeInvalidMessage, "invalid grid_shape payload")
		return
	}

	limit := c.server.config.Server.MaxShapeRadius
	if req.Radius > limit || req.Width > limit || req.Height > limit {
		c.SendError(network.ErrCodeShapeTooLarge, fmt.Sprintf("shape dimensions are capped at %d", limit))
		return
	}

	g, err := BuildGrid(c.server.factory, req.Shape, req.Radius, req.Width, req.Height)
	if err != nil {
		c.SendError(network.ErrCodeInvalidShape, err.Error())
		return
	}

	hexes := make([]network.HexPayload, 0, g.Len())
	g.Each(func(h hex.Hex) {
		hexes = append(hexes, c.server.hexPayload(h))
	})

	c.SendMessage(&network.ServerMessage{
		Type: network.MsgTypeGrid,
		Payload: network.GridPayload{
			Shape: req.Shape,
			Count: g.Len(),
			Hexes: hexes,
		},
	})
}

// handlePing handles ping requests
func (c *Connection) handlePing() {
	c.SendMessage(&network.ServerMessage{
		Type:    network.MsgTypePong,
		Payload: network.PongPayload{Timestamp: time.Now().Unix()},
	})
}

// SendMessage queues a message for the client; a full buffer drops the
// message rather than block the handlers.
func (c *Connection) SendMessage(msg *network.ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("failed to marshal message", zap.Error(err))
		return
	}

	select {
	case c.send <- data:
	default:
		c.logger.Warn("send buffer full, dropping message", zap.String("type", msg.Type))
	}
}

// SendError sends an error message to the client
func (c *Connection) SendError(code, message string) {
	c.SendMessage(&network.ServerMessage{
		Type: network.MsgTypeError,
		Payload: network.ErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}

// Close closes the connection; safe to call more than once.
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		close(c.send)
		c.ws.Close()
	})
}
