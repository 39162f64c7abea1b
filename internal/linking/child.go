package linking

import (
	"context"
	"errors"
	"fmt"

	"devlink/internal/domain"
)

// Child runs the enrolling side of one pairing, after the parent has
// joined the session and shared the code out of band.
//
// Steps:
//  1. Derive this device's DID, opaque device name, and exchange-key text.
//  2. Join the relay session and immediately announce them.
//  3. Suspend until exactly one grant arrives; decode and resolve with the
//     new identity and certificate.
//
// The DID announced here is the identifier the parent certifies. Callers
// must treat certificate.Recipient == kr.DID() as the trust anchor and
// verify the certificate before relying on the result; the protocol itself
// does not re-check either.
func (s *Service) Child(
	ctx context.Context,
	kr domain.Keyring,
	opts domain.LinkOptions,
) (domain.LinkResult, error) {
	if opts.HumanDeviceName == "" {
		return domain.LinkResult{}, errors.New("a human-readable device name is required")
	}
	did := kr.DID()

	join, err := EncodeJoin(domain.JoinMessage{
		NewDeviceID:             did,
		DeviceName:              s.identities.DeviceNameFor(did),
		ExchangeKey:             kr.ExchangeKeyText(),
		HumanReadableDeviceName: opts.HumanDeviceName,
	})
	if err != nil {
		return domain.LinkResult{}, fmt.Errorf("encoding join: %w", err)
	}

	conn, err := s.transport.Dial(ctx, opts.RelayAddr, opts.Code, did.String())
	if err != nil {
		return domain.LinkResult{}, err
	}
	defer conn.Close()

	if err := conn.Send(ctx, join); err != nil {
		return domain.LinkResult{}, err
	}

	payload, err := conn.Next(ctx)
	if err != nil {
		return domain.LinkResult{}, err
	}
	grant, err := DecodeGrant(payload)
	if err != nil {
		return domain.LinkResult{}, err
	}

	return domain.LinkResult{
		Identity:    grant.NewIdentity,
		Certificate: grant.Certificate,
	}, nil
}
