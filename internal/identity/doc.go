// Package identity manages the identity aggregate: the set of devices that
// share one user identity.
//
// It derives opaque device names from DIDs, creates single-device
// aggregates, and enrolls additional devices. AddDevice never mutates its
// input and rejects a DID that is already enrolled.
package identity
