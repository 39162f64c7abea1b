package domain

// Device is one enrolled device inside an identity aggregate.
type Device struct {
	Name        DeviceName `json:"name"`
	HumanName   string     `json:"humanName"`
	DID         DID        `json:"did"`
	ExchangeKey string     `json:"exchangeKey"`
}

// Identity aggregates the devices that share one user identity. Username is
// the opaque name of the founding device and stays stable as devices are
// added; Devices is keyed by each device's opaque name.
type Identity struct {
	Username  DeviceName            `json:"username"`
	HumanName string                `json:"humanName"`
	RootDID   DID                   `json:"rootDid"`
	Devices   map[DeviceName]Device `json:"devices"`
}

// Clone returns a deep copy of the identity so aggregate updates never
// mutate the caller's value.
func (id Identity) Clone() Identity {
	out := id
	out.Devices = make(map[DeviceName]Device, len(id.Devices))
	for name, dev := range id.Devices {
		out.Devices[name] = dev
	}
	return out
}

// HasDevice reports whether any enrolled device carries the given DID.
func (id Identity) HasDevice(did DID) bool {
	for _, dev := range id.Devices {
		if dev.DID == did {
			return true
		}
	}
	return false
}
