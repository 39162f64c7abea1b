// Package main runs the websocket relay used by devlink pairings. It hosts
// ephemeral, code-addressed two-party sessions and forwards frames between
// the participants without inspecting them.
//
// HTTP API
//
//	GET /session/{code}?device={connectionID}
//	    Upgrade to a websocket and join the session addressed by {code}.
//	    The first connection to join owns the session; a third join is
//	    rejected with 409 before the upgrade. Every text frame received on
//	    the socket is forwarded to the other participant, in order, and
//	    never echoed back.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit. A session is
//     created on first join and reaped when both sides have disconnected.
//   - A frame sent before the session has an owner is a protocol violation:
//     it is logged at error level and the offending socket is closed with a
//     policy-violation close frame.
//   - The default listen address is :1999. Settings can come from flags or
//     a TOML config file.
//
// The relay is an untrusted middleman: knowing the code is the only
// admission requirement, so transport security and code secrecy are the
// deployment's responsibility.
package main
