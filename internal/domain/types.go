package domain

// DID is a decentralized identifier derived from a device's public signing
// key, in the did:key method ("did:key:z" + base58btc of the prefixed key).
type DID string

// String returns the string form of the identifier.
func (d DID) String() string { return string(d) }

// DeviceName is the opaque, collision-resistant label for a device. It is
// derived from the device's DID and is independent of the human-readable
// name a user picks.
type DeviceName string

// String returns the string form of the device name.
func (n DeviceName) String() string { return string(n) }

// X25519Public is a Curve25519 public exchange key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 private exchange key.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [32]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Private is an Ed25519 signing private key.
type Ed25519Private [64]byte

// Slice returns the key as a []byte.
func (k Ed25519Private) Slice() []byte { return k[:] }
