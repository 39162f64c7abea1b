// Package certificate issues and verifies device-authorization certificates.
//
// A certificate is an EdDSA-signed JWT whose claims name the recipient
// device's DID, the issuing (author) DID, and an optional validity window
// (nbf/exp). Because DIDs are self-certifying, verification recovers the
// author's public key from the identifier itself; no key registry is
// involved.
package certificate
