// Package relay hosts ephemeral, code-addressed two-party sessions and
// forwards opaque payloads between the participants of a session. It never
// inspects payload content.
//
// The Hub is the session table: a session is created implicitly by the
// first connection referencing an unseen code, holds at most two live
// connections, and is discarded when both have left. The first connection
// to join becomes the session owner; forwarding a payload before an owner
// exists is a protocol violation.
//
// Server binds the hub to websocket transport; Dialer is the matching
// client used by the pairing roles.
package relay
