package domain

import "time"

// Certificate is a signed assertion from a parent device that the recipient
// device is authorized. Token is the compact JWS encoding of the same
// claims; the struct fields are the decoded convenience view and must match
// the token, which Verify enforces.
type Certificate struct {
	Recipient DID    `json:"recipient"`
	Author    DID    `json:"author"`
	NotBefore int64  `json:"nbf,omitempty"`
	Expires   int64  `json:"exp,omitempty"`
	Token     string `json:"token"`
}

// CertificateOptions controls certificate issuance. Zero time values mean
// the corresponding bound is omitted.
type CertificateOptions struct {
	Recipient DID
	NotBefore time.Time
	Expires   time.Time
}
