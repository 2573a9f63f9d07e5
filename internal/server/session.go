package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tonal/internal/editor"
	"github.com/jmylchreest/tonal/internal/grade"
	"github.com/jmylchreest/tonal/internal/history"
	"github.com/jmylchreest/tonal/internal/palette"
)

// Session reply types.
const (
	ReplyState = "state"
	ReplyError = "error"
)

// SessionReply is sent to the client after connecting and after each message.
type SessionReply struct {
	Type      string            `json:"type"`
	Session   string            `json:"session"`
	Palette   *PaletteView      `json:"palette,omitempty"`
	DidUpdate bool              `json:"did_update"`
	Pushed    bool              `json:"pushed"`
	Moved     bool              `json:"moved"`
	Error     string            `json:"error,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// sessionConn serialises writes; gorilla/websocket allows one writer at a time.
type sessionConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *sessionConn) send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// handleSession upgrades to a websocket and runs an editing session. The
// session starts from the palette in the request's query string and keeps
// its own history, so back/forward messages undo and redo commits.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: s.checkOrigin}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	logger := s.logger.Named("session").With("session", id)

	location := ""
	if r.URL.RawQuery != "" {
		location = "?" + r.URL.RawQuery
	}
	ed := editor.New(history.NewMemoryNavigator(location), logger)
	sc := &sessionConn{conn: conn}

	logger.Debug("session started", "location", location)
	defer logger.Debug("session ended")

	if err := sc.send(SessionReply{Type: ReplyState, Session: id, Palette: paletteViewPtr(ed.Palette(), ed.Location())}); err != nil {
		logger.Warn("failed to send initial state", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	msgs := make(chan editor.Message)
	go s.readSession(ctx, cancel, conn, sc, id, msgs, logger)

	err = ed.Run(ctx, msgs, func(res editor.Result, err error) {
		reply := SessionReply{Type: ReplyState, Session: id}
		if err != nil {
			reply.Type = ReplyError
			reply.Error = err.Error()
		} else {
			reply.Palette = paletteViewPtr(res.Palette, res.Location)
			reply.DidUpdate = res.DidUpdate
			reply.Pushed = res.Pushed
			reply.Moved = res.Moved
		}
		if err := sc.send(reply); err != nil {
			logger.Debug("failed to send reply", "error", err)
			cancel()
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("session stopped", "error", err)
	}
}

// readSession decodes client messages and feeds valid ones to msgs. Invalid
// messages are answered directly. It closes msgs when the connection ends.
func (s *Server) readSession(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, sc *sessionConn, id string, msgs chan<- editor.Message, logger hclog.Logger) {
	defer close(msgs)
	defer cancel()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("read failed", "error", err)
			}
			return
		}

		msg, err := parseSessionMessage(data)
		if err != nil {
			reply := SessionReply{Type: ReplyError, Session: id, Error: err.Error()}
			var reqErr *RequestError
			if errors.As(err, &reqErr) {
				reply.Fields = reqErr.Fields
			}
			if err := sc.send(reply); err != nil {
				return
			}
			continue
		}

		select {
		case msgs <- msg:
		case <-ctx.Done():
			return
		}
	}
}

func parseSessionMessage(data []byte) (editor.Message, error) {
	var req SessionMessage
	if err := json.Unmarshal(data, &req); err != nil {
		return editor.Message{}, &RequestError{Message: "invalid JSON: " + err.Error()}
	}
	if err := validateRequest(&req); err != nil {
		return editor.Message{}, err
	}

	kind, err := editor.ParseKind(req.Type)
	if err != nil {
		return editor.Message{}, &RequestError{Message: err.Error()}
	}

	msg := editor.Message{Kind: kind, Scale: req.Scale, Color: req.Color}
	if req.Grade != nil {
		msg.Grade = grade.Grade(*req.Grade)
	}
	return msg, nil
}

// checkOrigin allows same-origin connections and configured allowed origins.
// Loopback origins are allowed only while the server listens on loopback.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	// Same-origin requests omit the Origin header.
	if origin == "" {
		return true
	}
	if slices.Contains(s.config.AllowedOrigins, origin) {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil {
		s.logger.Warn("rejected websocket connection: invalid origin", "origin", origin)
		return false
	}

	host := u.Hostname()
	requestHost := r.Host
	if h, _, err := net.SplitHostPort(requestHost); err == nil {
		requestHost = h
	}
	if host == requestHost {
		return true
	}

	if isLoopback(host) && s.loopbackOnly() {
		return true
	}

	s.logger.Warn("rejected websocket connection", "origin", origin)
	return false
}

// loopbackOnly reports whether the configured listen address is a loopback
// host. An empty host listens on every interface.
func (s *Server) loopbackOnly() bool {
	host, _, err := net.SplitHostPort(s.config.Addr)
	if err != nil {
		return false
	}
	return isLoopback(host)
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func paletteViewPtr(p palette.Palette, location string) *PaletteView {
	view := newPaletteView(p, location)
	return &view
}
