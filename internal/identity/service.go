package identity

import (
	"crypto/sha256"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"

	"devlink/internal/domain"
)

// deviceNameLength is the number of characters in an opaque device name.
const deviceNameLength = 32

// ErrDuplicateDevice is returned when a DID is already enrolled in the
// aggregate.
var ErrDuplicateDevice = errors.New("device is already enrolled")

// Service implements the identity-aggregate collaborator.
type Service struct{}

// New returns an identity service.
func New() *Service { return &Service{} }

// Create builds a fresh aggregate containing only the founding device. The
// aggregate's username is that device's opaque name.
func (s *Service) Create(did domain.DID, exchangeKey, humanName, deviceLabel string) domain.Identity {
	name := s.DeviceNameFor(did)
	return domain.Identity{
		Username:  name,
		HumanName: humanName,
		RootDID:   did,
		Devices: map[domain.DeviceName]domain.Device{
			name: {
				Name:        name,
				HumanName:   deviceLabel,
				DID:         did,
				ExchangeKey: exchangeKey,
			},
		},
	}
}

// AddDevice returns a new aggregate that includes the device. The input
// aggregate is copied, never mutated, so a failure later in a pairing flow
// leaves the caller's identity untouched.
func (s *Service) AddDevice(
	id domain.Identity,
	newDID domain.DID,
	exchangeKey string,
	humanName string,
) (domain.Identity, error) {
	if id.HasDevice(newDID) {
		return domain.Identity{}, fmt.Errorf("%w: %s", ErrDuplicateDevice, newDID)
	}

	name := s.DeviceNameFor(newDID)
	if _, ok := id.Devices[name]; ok {
		return domain.Identity{}, fmt.Errorf("%w: name %s", ErrDuplicateDevice, name)
	}

	out := id.Clone()
	out.Devices[name] = domain.Device{
		Name:        name,
		HumanName:   humanName,
		DID:         newDID,
		ExchangeKey: exchangeKey,
	}
	return out, nil
}

// DeviceNameFor derives the opaque device name for a DID: a SHA-256 digest
// of the identifier, base32-encoded and truncated. Collision-resistant and
// independent of any human-readable label.
func (s *Service) DeviceNameFor(did domain.DID) domain.DeviceName {
	sum := sha256.Sum256([]byte(did))
	name := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(sum[:])
	return domain.DeviceName(strings.ToLower(name[:deviceNameLength]))
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
