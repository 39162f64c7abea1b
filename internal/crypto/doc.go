// Package crypto exposes the key-material primitives used by devlink.
//
// Contents
//
//   - Keyring: a device's Ed25519 signing pair and X25519 exchange pair
//     (NewKeyring, Wipe)
//   - did:key encoding and decoding of signing public keys (EncodeDID,
//     DecodeDID)
//   - X25519 key generation with RFC 7748 clamping (GenerateX25519)
//   - Fixed-alphabet text encoding of exchange keys (ExchangeKeyToText,
//     ExchangeKeyFromText)
//
// # Notes
//
// Functions operate on the fixed-size array types defined in internal/domain
// to avoid accidental reallocations. Callers should treat private material
// as sensitive and call Wipe when a keyring is no longer needed.
package crypto
