package domain

import (
	"context"
	stdcrypto "crypto"
)

// Keyring exposes a device's key material to the linking protocol without
// handing out raw private keys.
type Keyring interface {
	// DID returns the identifier derived from the signing public key.
	// Deterministic and stable for the device's lifetime.
	DID() DID

	// ExchangeKeyText returns the public exchange key encoded for the wire.
	ExchangeKeyText() string

	// Signer returns the signing key for certificate issuance.
	Signer() stdcrypto.Signer
}

// IdentityService is the identity-aggregate collaborator.
type IdentityService interface {
	// Create builds a fresh single-device identity for the given DID.
	Create(did DID, exchangeKey, humanName, deviceLabel string) Identity

	// AddDevice returns a new aggregate including the device. It fails if
	// the DID is already enrolled; the input aggregate is never mutated.
	AddDevice(id Identity, newDID DID, exchangeKey, humanName string) (Identity, error)

	// DeviceNameFor derives the opaque device name for a DID.
	DeviceNameFor(did DID) DeviceName
}

// CertificateIssuer mints and checks device-authorization certificates.
type CertificateIssuer interface {
	Issue(kr Keyring, opts CertificateOptions) (Certificate, error)
	Verify(cert Certificate) error
}

// SessionConn is one side of an established relay session.
type SessionConn interface {
	Send(ctx context.Context, payload []byte) error

	// Next blocks until the peer's next frame arrives, the context is
	// done, or the connection closes.
	Next(ctx context.Context) ([]byte, error)

	Close() error
}

// SessionTransport opens relay connections addressed by a session code.
type SessionTransport interface {
	Dial(ctx context.Context, addr, code, connID string) (SessionConn, error)
}

// LinkOptions parameterizes one pairing attempt for either role.
type LinkOptions struct {
	// RelayAddr is the relay base URL, e.g. ws://127.0.0.1:1999.
	RelayAddr string

	// Code is the shared session code, transmitted out of band.
	Code string

	// HumanDeviceName labels the new device. Used by the child role only.
	HumanDeviceName string

	// Certificate bounds the issued certificate. Used by the parent role
	// only; the Recipient field is ignored and always set from the join.
	Certificate CertificateOptions
}

// LinkResult is what the child role resolves with.
type LinkResult struct {
	Identity    Identity    `json:"identity"`
	Certificate Certificate `json:"certificate"`
}

// Linker runs the two pairing roles. Each call is single-shot: exactly one
// pairing per invocation, no retries.
type Linker interface {
	Parent(ctx context.Context, id Identity, kr Keyring, opts LinkOptions) (Identity, error)
	Child(ctx context.Context, kr Keyring, opts LinkOptions) (LinkResult, error)
}
