// Package server streams visualizer runs to a browser over a websocket.
//
// A client sends {"type":"run","payload":RunPayload} and receives one
// "frame" message per visualizer.Event, then "complete" or "error". Each
// connection runs at most one algorithm at a time; "stop" cancels it.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/algoviz/internal/config"
	"github.com/katalvlaran/algoviz/internal/ctxlog"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/visualizer"
)

const (
	pingPeriod   = 30 * time.Second
	writeTimeout = 10 * time.Second
	sendBuffer   = 256
)

// ErrBadRequest marks run requests that cannot be executed as sent.
var ErrBadRequest = errors.New("server: bad request")

// Server serves /ws and /health.
type Server struct {
	cfg      config.Config
	log      *slog.Logger
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// New returns a Server using cfg for panel speeds and logger for output.
func New(cfg config.Config, logger *slog.Logger) *Server {
	s := &Server{
		cfg: cfg,
		log: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// The renderer may be served from anywhere, e.g. a dev server.
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	s.mux.HandleFunc("/ws", s.serveWs)

	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe serves on cfg.Addr until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		errc <- srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("Server starting.", "addr", s.cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return <-errc
}

func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Failed to upgrade connection.", "error", err)
		return
	}

	log := s.log.With("remote", r.RemoteAddr)
	ctx, cancel := context.WithCancel(ctxlog.WithLogger(context.Background(), log))
	c := &client{
		conn:  conn,
		cfg:   s.cfg,
		log:   log,
		ctx:   ctx,
		close: cancel,
		out:   make(chan Message, sendBuffer),
	}
	log.Debug("Client connected.")

	go c.writePump()
	go c.readPump()
}

// client represents a connected WebSocket client
type client struct {
	conn  *websocket.Conn
	cfg   config.Config
	log   *slog.Logger
	ctx   context.Context // done when the connection goes away
	close context.CancelFunc
	out   chan Message

	mu        sync.Mutex
	runCancel context.CancelFunc // non-nil while a run is active
}

// send queues msg for the write pump. It gives up when ctx or the
// connection is done.
func (c *client) send(ctx context.Context, msg Message) bool {
	select {
	case c.out <- msg:
		return true
	case <-ctx.Done():
		return false
	case <-c.ctx.Done():
		return false
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
		case msg := <-c.out:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.log.Warn("Error writing message.", "error", err)
				c.close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		case <-c.ctx.Done():
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

func (c *client) readPump() {
	defer func() {
		// Cancel any running algorithm with the connection.
		c.close()
		c.log.Debug("Client disconnected.")
	}()

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("WebSocket error.", "error", err)
			}
			return
		}

		switch msg.Type {
		case TypeRun:
			c.handleRun(msg)
		case TypeStop:
			c.mu.Lock()
			if c.runCancel != nil {
				c.runCancel()
			}
			c.mu.Unlock()
		case TypePing:
			c.send(c.ctx, Message{Type: TypePong})
		default:
			c.send(c.ctx, NewErrorMessage(CodeBadRequest, fmt.Sprintf("Unknown message type: %s", msg.Type), nil))
		}
	}
}

func (c *client) handleRun(msg Message) {
	payload, err := ParseRunPayload(msg)
	if err != nil {
		c.send(c.ctx, NewErrorMessage(CodeBadRequest, "Failed to parse run request", err))
		return
	}

	c.mu.Lock()
	if c.runCancel != nil {
		c.mu.Unlock()
		c.send(c.ctx, NewErrorMessage(CodeBusy, "Run already in progress", nil))
		return
	}
	ctx, cancel := context.WithCancel(c.ctx)
	c.runCancel = cancel
	c.mu.Unlock()

	go c.run(ctx, payload)
}

// run streams one algorithm run to the client.
func (c *client) run(ctx context.Context, p *RunPayload) {
	log := c.log.With("panel", p.Panel, "algorithm", p.Algorithm)
	ctx = ctxlog.WithLogger(ctx, log)

	stream := visualizer.Stream(ctx, 0, func(ctx context.Context, r visualizer.Renderer) error {
		s, err := newSession(c.cfg, p, r)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		return execute(ctx, s, p)
	})

	frames := 0
	for ev := range stream.All() {
		if !c.send(ctx, NewFrameMessage(ev)) {
			break
		}
		frames++
	}

	var final Message
	switch err := stream.Err(); {
	case err == nil:
		final = NewCompleteMessage(p.Panel, frames)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Info("Run cancelled.", "frames", frames)
		final = NewErrorMessage(CodeCancelled, "Run cancelled", nil)
	case isBadRequest(err):
		final = NewErrorMessage(CodeBadRequest, "Invalid run request", err)
	default:
		log.Warn("Run failed.", "error", err)
		final = NewErrorMessage(CodeRunFailed, "Run failed", err)
	}

	// The connection is idle before the client learns the outcome.
	c.mu.Lock()
	c.runCancel()
	c.runCancel = nil
	c.mu.Unlock()
	c.send(c.ctx, final)
}

// isBadRequest reports validation failures the client can fix.
func isBadRequest(err error) bool {
	for _, target := range []error{
		ErrBadRequest,
		sorting.ErrUnknownAlgorithm,
		visualizer.ErrEndpointsUnset,
		visualizer.ErrSameEndpoints,
		visualizer.ErrEmptyTree,
		visualizer.ErrUnknownTraversal,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
