package linking

import (
	"devlink/internal/domain"
)

// Service runs the two pairing roles against a relay.
//
// The identity and certificate collaborators are injected; their failures
// (for example enrolling an already-present device) propagate to the caller
// unchanged.
type Service struct {
	identities   domain.IdentityService
	certificates domain.CertificateIssuer
	transport    domain.SessionTransport
}

// New constructs a linking service.
func New(
	identities domain.IdentityService,
	certificates domain.CertificateIssuer,
	transport domain.SessionTransport,
) *Service {
	return &Service{
		identities:   identities,
		certificates: certificates,
		transport:    transport,
	}
}

// Compile-time assertion that Service implements domain.Linker.
var _ domain.Linker = (*Service)(nil)
