package linking

import (
	"context"
	"fmt"

	"devlink/internal/domain"
)

// Parent runs the authorizing side of one pairing. It must be invoked
// before the child so its connection owns the relay session.
//
// Steps:
//  1. Join the relay session, identifying as our own DID.
//  2. Suspend until exactly one frame arrives from the new device.
//  3. Decode and validate the join (a malformed frame fails the whole
//     operation before any collaborator is touched).
//  4. Enroll the device into a new identity aggregate.
//  5. Issue a certificate naming the new device as recipient.
//  6. Send the grant and resolve with the updated identity.
//
// The operation is single-shot: it never loops to accept a second child.
// The caller bounds the wait through ctx; there is no built-in deadline.
func (s *Service) Parent(
	ctx context.Context,
	id domain.Identity,
	kr domain.Keyring,
	opts domain.LinkOptions,
) (domain.Identity, error) {
	conn, err := s.transport.Dial(ctx, opts.RelayAddr, opts.Code, kr.DID().String())
	if err != nil {
		return domain.Identity{}, err
	}
	defer conn.Close()

	payload, err := conn.Next(ctx)
	if err != nil {
		return domain.Identity{}, err
	}
	join, err := DecodeJoin(payload)
	if err != nil {
		return domain.Identity{}, err
	}

	newIdentity, err := s.identities.AddDevice(
		id,
		join.NewDeviceID,
		join.ExchangeKey,
		join.HumanReadableDeviceName,
	)
	if err != nil {
		return domain.Identity{}, err
	}

	certOpts := opts.Certificate
	certOpts.Recipient = join.NewDeviceID
	cert, err := s.certificates.Issue(kr, certOpts)
	if err != nil {
		return domain.Identity{}, err
	}

	grant, err := EncodeGrant(domain.GrantMessage{
		NewIdentity: newIdentity,
		Certificate: cert,
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("encoding grant: %w", err)
	}
	if err := conn.Send(ctx, grant); err != nil {
		return domain.Identity{}, err
	}

	return newIdentity, nil
}
