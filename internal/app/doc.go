// Package app wires application dependencies for the CLI.
//
// It builds the concrete collaborators and the linking service from Config,
// exposing them via the Wire struct for commands to use.
package app
