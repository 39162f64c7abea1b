package crypto

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"

	"devlink/internal/domain"
)

// ErrInvalidExchangeKey is returned when exchange-key text does not decode
// to a Curve25519 public key.
var ErrInvalidExchangeKey = errors.New("invalid exchange key encoding")

// ExchangeKeyToText encodes a public exchange key for the wire using the
// base58btc alphabet.
func ExchangeKeyToText(pub domain.X25519Public) string {
	return base58.Encode(pub.Slice())
}

// ExchangeKeyFromText decodes wire text back into a public exchange key.
func ExchangeKeyFromText(s string) (domain.X25519Public, error) {
	var pub domain.X25519Public
	raw, err := base58.Decode(s)
	if err != nil {
		return pub, fmt.Errorf("%w: %v", ErrInvalidExchangeKey, err)
	}
	if len(raw) != len(pub) {
		return pub, fmt.Errorf("%w: %d bytes", ErrInvalidExchangeKey, len(raw))
	}
	copy(pub[:], raw)
	return pub, nil
}
