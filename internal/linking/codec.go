package linking

import (
	"encoding/json"
	"fmt"

	"devlink/internal/domain"
)

// EncodeJoin serializes a join frame.
func EncodeJoin(msg domain.JoinMessage) ([]byte, error) {
	msg.Type = domain.FrameJoin
	return json.Marshal(msg)
}

// DecodeJoin parses and validates a join frame. Any defect is ErrParse.
func DecodeJoin(payload []byte) (domain.JoinMessage, error) {
	var msg domain.JoinMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return domain.JoinMessage{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if msg.Type != domain.FrameJoin {
		return domain.JoinMessage{}, fmt.Errorf("%w: frame type %q, want %q", ErrParse, msg.Type, domain.FrameJoin)
	}
	switch {
	case msg.NewDeviceID == "":
		return domain.JoinMessage{}, fmt.Errorf("%w: join frame missing newDeviceId", ErrParse)
	case msg.DeviceName == "":
		return domain.JoinMessage{}, fmt.Errorf("%w: join frame missing deviceName", ErrParse)
	case msg.ExchangeKey == "":
		return domain.JoinMessage{}, fmt.Errorf("%w: join frame missing exchangeKey", ErrParse)
	case msg.HumanReadableDeviceName == "":
		return domain.JoinMessage{}, fmt.Errorf("%w: join frame missing humanReadableDeviceName", ErrParse)
	}
	return msg, nil
}

// EncodeGrant serializes a grant frame.
func EncodeGrant(msg domain.GrantMessage) ([]byte, error) {
	msg.Type = domain.FrameGrant
	return json.Marshal(msg)
}

// DecodeGrant parses and validates a grant frame. Any defect is ErrParse.
func DecodeGrant(payload []byte) (domain.GrantMessage, error) {
	var msg domain.GrantMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return domain.GrantMessage{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if msg.Type != domain.FrameGrant {
		return domain.GrantMessage{}, fmt.Errorf("%w: frame type %q, want %q", ErrParse, msg.Type, domain.FrameGrant)
	}
	switch {
	case msg.Certificate.Recipient == "" || msg.Certificate.Token == "":
		return domain.GrantMessage{}, fmt.Errorf("%w: grant frame missing certificate", ErrParse)
	case msg.NewIdentity.Username == "" || len(msg.NewIdentity.Devices) == 0:
		return domain.GrantMessage{}, fmt.Errorf("%w: grant frame missing identity", ErrParse)
	}
	return msg, nil
}
