package crypto

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"

	"devlink/internal/domain"
)

// did:key method constants. The multicodec prefix tags the key bytes as an
// Ed25519 public key before base58btc encoding.
const didKeyPrefix = "did:key:z"

var ed25519Multicodec = []byte{0xed, 0x01}

// DID decoding errors.
var (
	ErrInvalidDID        = errors.New("invalid did:key identifier")
	ErrUnsupportedDIDKey = errors.New("unsupported did:key key type")
)

// EncodeDID derives the did:key identifier for an Ed25519 public key.
func EncodeDID(pub domain.Ed25519Public) domain.DID {
	prefixed := make([]byte, 0, len(ed25519Multicodec)+len(pub))
	prefixed = append(prefixed, ed25519Multicodec...)
	prefixed = append(prefixed, pub.Slice()...)
	return domain.DID(didKeyPrefix + base58.Encode(prefixed))
}

// DecodeDID recovers the Ed25519 public key from a did:key identifier.
// The identifier is self-certifying: no registry lookup is involved.
func DecodeDID(did domain.DID) (domain.Ed25519Public, error) {
	var pub domain.Ed25519Public

	s := did.String()
	if len(s) <= len(didKeyPrefix) || s[:len(didKeyPrefix)] != didKeyPrefix {
		return pub, fmt.Errorf("%w: %q", ErrInvalidDID, did)
	}

	raw, err := base58.Decode(s[len(didKeyPrefix):])
	if err != nil {
		return pub, fmt.Errorf("%w: %v", ErrInvalidDID, err)
	}
	if len(raw) != len(ed25519Multicodec)+len(pub) {
		return pub, fmt.Errorf("%w: %d bytes", ErrInvalidDID, len(raw))
	}
	if raw[0] != ed25519Multicodec[0] || raw[1] != ed25519Multicodec[1] {
		return pub, fmt.Errorf("%w: multicodec 0x%x%x", ErrUnsupportedDIDKey, raw[0], raw[1])
	}

	copy(pub[:], raw[len(ed25519Multicodec):])
	return pub, nil
}
