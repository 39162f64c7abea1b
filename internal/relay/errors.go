package relay

import "errors"

var (
	// ErrNoOwner is returned when a payload is forwarded on a session
	// before any connection has joined it. This indicates caller misuse
	// and is fatal to the forwarding connection.
	ErrNoOwner = errors.New("payload forwarded before any connection joined the session")

	// ErrSessionFull is returned when a third connection attempts to join
	// a session that already has two participants.
	ErrSessionFull = errors.New("session already has two connections")

	// ErrUnknownSender is returned when the forwarding connection is not
	// a member of the session.
	ErrUnknownSender = errors.New("sender is not part of the session")

	// ErrPeerBacklog is returned when a peer's delivery queue is full.
	ErrPeerBacklog = errors.New("peer is not draining its delivery queue")
)
