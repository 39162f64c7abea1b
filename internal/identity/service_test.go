package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devlink/internal/crypto"
	"devlink/internal/domain"
	"devlink/internal/identity"
)

func newDID(t *testing.T) domain.DID {
	t.Helper()
	kr, err := crypto.NewKeyring()
	require.NoError(t, err)
	return kr.DID()
}

func TestCreate_SingleDeviceAggregate(t *testing.T) {
	svc := identity.New()
	did := newDID(t)

	id := svc.Create(did, "xkey", "alice", "phone")

	assert.Equal(t, did, id.RootDID)
	assert.Equal(t, "alice", id.HumanName)
	require.Len(t, id.Devices, 1)

	dev, ok := id.Devices[id.Username]
	require.True(t, ok, "username must key the founding device")
	assert.Equal(t, did, dev.DID)
	assert.Equal(t, "phone", dev.HumanName)
	assert.Equal(t, "xkey", dev.ExchangeKey)
}

func TestAddDevice_NewAggregate(t *testing.T) {
	svc := identity.New()
	id := svc.Create(newDID(t), "xkey", "alice", "phone")
	childDID := newDID(t)

	updated, err := svc.AddDevice(id, childDID, "childKey", "laptop")
	require.NoError(t, err)

	// Username is stable across enrollment.
	assert.Equal(t, id.Username, updated.Username)
	assert.Len(t, updated.Devices, 2)
	assert.True(t, updated.HasDevice(childDID))

	name := svc.DeviceNameFor(childDID)
	assert.Equal(t, "laptop", updated.Devices[name].HumanName)

	// Input aggregate untouched.
	assert.Len(t, id.Devices, 1)
	assert.False(t, id.HasDevice(childDID))
}

func TestAddDevice_DuplicateFails(t *testing.T) {
	svc := identity.New()
	id := svc.Create(newDID(t), "xkey", "alice", "phone")
	childDID := newDID(t)

	updated, err := svc.AddDevice(id, childDID, "childKey", "laptop")
	require.NoError(t, err)

	_, err = svc.AddDevice(updated, childDID, "childKey", "laptop again")
	assert.ErrorIs(t, err, identity.ErrDuplicateDevice)
}

func TestDeviceNameFor_StableAndOpaque(t *testing.T) {
	svc := identity.New()
	did := newDID(t)

	name := svc.DeviceNameFor(did)
	assert.Len(t, name.String(), 32)
	assert.Equal(t, name, svc.DeviceNameFor(did))
	assert.NotEqual(t, name, svc.DeviceNameFor(newDID(t)))
	assert.NotContains(t, name.String(), string(did))
}
