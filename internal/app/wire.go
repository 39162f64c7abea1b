package app

import (
	"devlink/internal/certificate"
	"devlink/internal/domain"
	"devlink/internal/identity"
	"devlink/internal/linking"
	"devlink/internal/relay"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// RelayAddr is the relay base URL, e.g. ws://127.0.0.1:1999.
	RelayAddr string

	// Transport overrides the relay dialer; defaults to a websocket dialer.
	Transport domain.SessionTransport
}

// Wire bundles the collaborators and services for the CLI.
type Wire struct {
	Identities   domain.IdentityService
	Certificates domain.CertificateIssuer
	Transport    domain.SessionTransport
	Linker       domain.Linker

	RelayAddr string
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	transport := cfg.Transport
	if transport == nil {
		transport = relay.NewDialer()
	}

	identities := identity.New()
	certificates := certificate.New()

	return &Wire{
		Identities:   identities,
		Certificates: certificates,
		Transport:    transport,
		Linker:       linking.New(identities, certificates, transport),
		RelayAddr:    cfg.RelayAddr,
	}
}
