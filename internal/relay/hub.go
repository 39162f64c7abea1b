package relay

import (
	"fmt"
	"sync"
)

// maxSessionConns is the participant limit per session.
const maxSessionConns = 2

// deliveryBacklog bounds each connection's pending delivery queue. The
// pairing protocol exchanges one frame per direction, so the bound is
// generous; hitting it means the peer stopped reading.
const deliveryBacklog = 32

// sessionState is the explicit owner state of a session.
type sessionState int

const (
	// stateUnassigned means no connection has joined yet.
	stateUnassigned sessionState = iota

	// stateOwned means an owner has been recorded. The owner is the first
	// connection to have joined; by convention it is the parent device.
	stateOwned
)

// Conn is one registered participant of a session. Payloads forwarded by
// the peer arrive on the channel returned by Deliveries, in send order.
type Conn struct {
	id   string
	code string

	mu     sync.Mutex
	out    chan []byte
	closed bool
}

// ID returns the caller-supplied connection identifier.
func (c *Conn) ID() string { return c.id }

// SessionCode returns the code of the session this connection belongs to.
func (c *Conn) SessionCode() string { return c.code }

// Deliveries returns the ordered stream of payloads forwarded to this
// connection. The channel is closed when the connection leaves its session.
func (c *Conn) Deliveries() <-chan []byte { return c.out }

// deliver enqueues a payload for this connection.
func (c *Conn) deliver(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	select {
	case c.out <- payload:
		return nil
	default:
		return fmt.Errorf("%w: connection %s", ErrPeerBacklog, c.id)
	}
}

// close shuts the delivery stream. Safe to call more than once.
func (c *Conn) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.out)
	}
}

// session is one code-addressed pairing session.
type session struct {
	code  string
	state sessionState
	owner string
	conns []*Conn
}

// Hub is the process-wide session table. All session membership changes are
// serialized through the hub mutex, which is what resolves the race between
// two near-simultaneous first joins.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*session
}

// NewHub returns an empty session table.
func NewHub() *Hub {
	return &Hub{sessions: make(map[string]*session)}
}

// Join registers a connection under a session code, creating the session if
// the code is unseen. The first connection to join becomes the owner. A
// join beyond the two-participant limit fails with ErrSessionFull and
// leaves the session undisturbed.
func (h *Hub) Join(code, connID string) (*Conn, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[code]
	if !ok {
		s = &session{code: code}
		h.sessions[code] = s
	}
	if len(s.conns) >= maxSessionConns {
		return nil, fmt.Errorf("%w: code %s", ErrSessionFull, code)
	}

	c := &Conn{
		id:   connID,
		code: code,
		out:  make(chan []byte, deliveryBacklog),
	}
	if s.state == stateUnassigned {
		s.state = stateOwned
		s.owner = connID
	}
	s.conns = append(s.conns, c)
	return c, nil
}

// Forward delivers payload to every other connection in the session, never
// back to the sender. Per-sender order is preserved. Forwarding before an
// owner exists fails with ErrNoOwner.
func (h *Hub) Forward(code, senderID string, payload []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	// A code nobody joined has no session and therefore no owner; both
	// cases are the same ordering violation by the caller.
	s, ok := h.sessions[code]
	if !ok || s.state == stateUnassigned {
		return fmt.Errorf("%w: code %s", ErrNoOwner, code)
	}

	sender := false
	for _, c := range s.conns {
		if c.id == senderID {
			sender = true
			break
		}
	}
	if !sender {
		return fmt.Errorf("%w: %s on code %s", ErrUnknownSender, senderID, code)
	}

	for _, c := range s.conns {
		if c.id == senderID {
			continue
		}
		if err := c.deliver(payload); err != nil {
			return err
		}
	}
	return nil
}

// Leave removes a connection from its session and closes its delivery
// stream. When the session's connection count reaches zero the session is
// discarded. Safe to call for a connection that already left.
func (h *Hub) Leave(c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	defer c.close()

	s, ok := h.sessions[c.code]
	if !ok {
		return
	}
	for i, member := range s.conns {
		if member == c {
			s.conns = append(s.conns[:i], s.conns[i+1:]...)
			break
		}
	}
	if len(s.conns) == 0 {
		delete(h.sessions, c.code)
	}
}

// Sessions reports the number of live sessions. Used by operational
// logging and tests.
func (h *Hub) Sessions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}
