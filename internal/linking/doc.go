// Package linking implements the device pairing protocol: the Parent role,
// the Child role, and the JSON frame codec they exchange over a relay
// session.
//
// One pairing is a one-shot exchange. The parent joins the relay session
// first (first join owns the session), waits for exactly one join frame
// from the new device, enrolls it into the identity aggregate, issues a
// certificate naming the new device, and answers with a grant frame. The
// child joins second, announces its key material, and waits for exactly one
// grant. There are no retries; a failed pairing is re-run with a fresh
// code.
//
// The session code is a short shared secret generated by the parent and
// carried to the child out of band. Neither role trusts the relay with
// anything beyond session membership.
package linking
