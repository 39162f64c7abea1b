package domain

// Frame type discriminators. The two wire shapes are distinguished by an
// explicit tag rather than by connection role alone, so an out-of-order or
// malformed frame fails as a parse error instead of a field-shape accident.
const (
	FrameJoin  = "join"
	FrameGrant = "grant"
)

// JoinMessage announces a new device to the parent. All fields are required;
// a missing or empty field is a hard parse failure.
type JoinMessage struct {
	Type                    string     `json:"type"`
	NewDeviceID             DID        `json:"newDeviceId"`
	DeviceName              DeviceName `json:"deviceName"`
	ExchangeKey             string     `json:"exchangeKey"`
	HumanReadableDeviceName string     `json:"humanReadableDeviceName"`
}

// GrantMessage carries the updated identity and the authorization
// certificate back to the new device. Certificate.Recipient equals the
// NewDeviceID of the JoinMessage it answers.
type GrantMessage struct {
	Type        string      `json:"type"`
	NewIdentity Identity    `json:"newIdentity"`
	Certificate Certificate `json:"certificate"`
}
