package relay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"devlink/internal/domain"
)

// Dialer opens relay sessions over websocket.
type Dialer struct {
	// WS defaults to websocket.DefaultDialer.
	WS *websocket.Dialer
}

// NewDialer returns a Dialer with default settings.
func NewDialer() *Dialer { return &Dialer{} }

// Dial joins the session addressed by code, identifying as connID. addr is
// the relay base URL; ws, wss, http, and https schemes are accepted (http
// schemes are rewritten to their websocket counterpart).
func (d *Dialer) Dial(ctx context.Context, addr, code, connID string) (domain.SessionConn, error) {
	target, err := sessionURL(addr, code, connID)
	if err != nil {
		return nil, err
	}

	wsd := d.WS
	if wsd == nil {
		wsd = websocket.DefaultDialer
	}
	ws, resp, err := wsd.DialContext(ctx, target, nil)
	if resp != nil && resp.StatusCode == http.StatusConflict {
		return nil, fmt.Errorf("%w: code %s", ErrSessionFull, code)
	}
	if err != nil {
		return nil, fmt.Errorf("dial relay %s: %w", target, err)
	}

	c := &clientConn{
		ws:     ws,
		frames: make(chan []byte, deliveryBacklog),
	}
	go c.readLoop()
	return c, nil
}

// sessionURL builds the websocket URL for a session.
func sessionURL(addr, code, connID string) (string, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return "", fmt.Errorf("relay address %q: %w", addr, err)
	}
	switch u.Scheme {
	case "ws", "wss":
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("relay address %q: unsupported scheme %q", addr, u.Scheme)
	}
	u.Path, err = url.JoinPath(u.Path, "session", code)
	if err != nil {
		return "", fmt.Errorf("relay address %q: %w", addr, err)
	}
	u.RawQuery = url.Values{"device": {connID}}.Encode()
	return u.String(), nil
}

// clientConn is the dialer side of a relay session.
type clientConn struct {
	ws *websocket.Conn

	writeMu sync.Mutex

	frames chan []byte

	errMu   sync.Mutex
	readErr error
}

func (c *clientConn) readLoop() {
	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			c.errMu.Lock()
			c.readErr = err
			c.errMu.Unlock()
			close(c.frames)
			return
		}
		c.frames <- payload
	}
}

// Send writes one frame. A context deadline bounds the write.
func (c *clientConn) Send(ctx context.Context, payload []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	deadline := time.Now().Add(writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = c.ws.SetWriteDeadline(deadline)
	if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("send frame: %w", err)
	}
	return nil
}

// Next blocks until the peer's next frame arrives, the context is done, or
// the connection closes.
func (c *clientConn) Next(ctx context.Context) ([]byte, error) {
	select {
	case payload, ok := <-c.frames:
		if !ok {
			c.errMu.Lock()
			defer c.errMu.Unlock()
			return nil, fmt.Errorf("relay connection closed: %w", c.readErr)
		}
		return payload, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close leaves the session. The relay observes the socket close and reaps
// the session once both sides are gone.
func (c *clientConn) Close() error {
	c.writeMu.Lock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	_ = c.ws.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
	c.writeMu.Unlock()
	return c.ws.Close()
}

// Compile-time assertions for the transport contracts.
var (
	_ domain.SessionTransport = (*Dialer)(nil)
	_ domain.SessionConn      = (*clientConn)(nil)
)
