package crypto

import (
	stdcrypto "crypto"
	"crypto/ed25519"
	"crypto/rand"

	"devlink/internal/domain"
	"devlink/internal/util/memzero"
)

// Keyring carries a device's signature (Ed25519) and exchange (X25519)
// key material. The signing key names the device (via its DID); the
// exchange key is what a pairing transports to the parent.
type Keyring struct {
	edPub  domain.Ed25519Public
	edPriv domain.Ed25519Private
	xPub   domain.X25519Public
	xPriv  domain.X25519Private
}

// NewKeyring generates a fresh Ed25519 pair and X25519 pair.
func NewKeyring() (*Keyring, error) {
	edPub, edPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	xPriv, xPub, err := GenerateX25519()
	if err != nil {
		return nil, err
	}

	kr := &Keyring{xPub: xPub, xPriv: xPriv}
	copy(kr.edPub[:], edPub)
	copy(kr.edPriv[:], edPriv)
	return kr, nil
}

// DID returns the did:key identifier of the signing public key.
func (k *Keyring) DID() domain.DID {
	return EncodeDID(k.edPub)
}

// SigningKey returns the Ed25519 public key.
func (k *Keyring) SigningKey() domain.Ed25519Public { return k.edPub }

// ExchangeKey returns the X25519 public key.
func (k *Keyring) ExchangeKey() domain.X25519Public { return k.xPub }

// ExchangeKeyText returns the public exchange key in wire encoding.
func (k *Keyring) ExchangeKeyText() string {
	return ExchangeKeyToText(k.xPub)
}

// Signer returns the signing key for certificate issuance.
func (k *Keyring) Signer() stdcrypto.Signer {
	return ed25519.PrivateKey(k.edPriv.Slice())
}

// Wipe zeroes the private key material. The keyring must not be used
// afterwards.
func (k *Keyring) Wipe() {
	memzero.Zero(k.edPriv[:])
	memzero.Zero(k.xPriv[:])
}

// Compile-time assertion that Keyring implements domain.Keyring.
var _ domain.Keyring = (*Keyring)(nil)
