package server

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/gravitas-015/hexgrid/grid"
	"github.com/gravitas-015/hexgrid/hex"
	"github.com/gravitas-015/hexgrid/internal/config"
	"github.com/gravitas-015/hexgrid/internal/network"
	"github.com/gravitas-015/hexgrid/render"
)

// Server serves the configured hex grid to viewer clients over
// WebSocket and plain HTTP.
type Server struct {
	config  *config.Config
	logger  *zap.Logger
	factory *hex.Factory
	grid    *grid.Grid

	upgrader websocket.Upgrader
	httpSrv  *http.Server
	auth     *TokenValidator

	// Connection tracking
	connections map[*Connection]bool
	connMu      sync.RWMutex

	// Shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a server instance: it builds the factory and grid the
// config describes and prepares the websocket upgrader. Auth is only
// wired when enabled in the config.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	ctx, cancel := context.WithCancel(context.Background())

	factory, err := NewFactory(cfg.Grid)
	if err != nil {
		cancel()
		return nil, err
	}

	g, err := BuildGrid(factory, cfg.Grid.Shape, cfg.Grid.Radius, cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		cancel()
		return nil, err
	}

	srv := &Server{
		config:      cfg,
		logger:      logger,
		factory:     factory,
		grid:        g,
		connections: make(map[*Connection]bool),
		ctx:         ctx,
		cancel:      cancel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// The viewer is meant to sit on localhost or behind a
				// trusted frontend; any origin may connect.
				return true
			},
		},
	}

	if cfg.Auth.Enabled {
		srv.auth = NewTokenValidator(cfg.Auth)
	}

	logger.Info("server initialized",
		zap.String("shape", cfg.Grid.Shape),
		zap.String("orientation", factory.Orientation().String()),
		zap.Int("hexes", g.Len()),
		zap.Bool("auth", srv.auth != nil))

	return srv, nil
}

// Handler returns the HTTP handler serving the websocket, health and
// render endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/render", s.handleRender)
	return mux
}

// Start begins listening for connections
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("server listening",
		zap.String("websocket", "ws://"+addr+"/ws"),
		zap.String("health", "http://"+addr+"/healthz"))

	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	s.logger.Info("shutting down server")

	// Cancel context to signal shutdown to the connection pumps
	s.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.httpSrv != nil {
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			s.logger.Warn("http server shutdown error", zap.Error(err))
		}
	}

	// Close all WebSocket connections
	s.connMu.Lock()
	for conn := range s.connections {
		conn.Close()
	}
	s.connMu.Unlock()

	s.logger.Info("server shutdown complete")
	return nil
}

// handleWebSocket handles WebSocket connection requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !s.authorize(w, r) {
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	conn := NewConnection(ws, s)

	s.connMu.Lock()
	s.connections[conn] = true
	s.connMu.Unlock()

	s.logger.Info("websocket connection established",
		zap.String("conn_id", conn.id),
		zap.String("remote", r.RemoteAddr))

	// Handle connection (blocking)
	conn.Handle()

	s.connMu.Lock()
	delete(s.connections, conn)
	s.connMu.Unlock()

	s.logger.Info("websocket connection closed", zap.String("conn_id", conn.id))
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// handleRender streams a PNG of the configured grid. The image is
// rendered into a buffer first so an error can still produce a clean
// HTTP status.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if !s.authorize(w, r) {
		return
	}

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, s.grid, RenderOptions(s.config.Render)); err != nil {
		s.logger.Error("render failed", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// authorize enforces token auth when enabled. It writes the HTTP error
// itself and reports whether the request may proceed.
func (s *Server) authorize(w http.ResponseWriter, r *http.Request) bool {
	if s.auth == nil {
		return true
	}

	tokenString := extractToken(r)
	if tokenString == "" {
		http.Error(w, "missing authentication token", http.StatusUnauthorized)
		return false
	}

	if _, err := s.auth.ValidateToken(tokenString); err != nil {
		s.logger.Warn("rejected request",
			zap.String("remote", r.RemoteAddr),
			zap.Error(err))
		http.Error(w, "invalid authentication token", http.StatusUnauthorized)
		return false
	}

	return true
}

// hexPayload flattens a hex for the wire, marking whether the cell is
// part of the configured grid.
func (s *Server) hexPayload(h hex.Hex) network.HexPayload {
	return network.HexPayload{
		X:      h.X,
		Y:      h.Y,
		Z:      h.Z,
		Key:    h.String(),
		InGrid: s.grid.Contains(h),
	}
}
