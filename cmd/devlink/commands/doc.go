// Package commands defines the devlink CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - code    Generate a session code to share with the new device
//   - parent  Wait for a new device and authorize it
//   - child   Enroll this device using a code from the parent
//
// # Implementation
//
// The root command builds the dependency graph (collaborators, relay
// dialer, linking service) before any subcommand runs, so handlers share
// one app context. Both roles run under a --timeout deadline; the protocol
// itself has no built-in one.
package commands
