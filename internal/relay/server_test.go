package relay_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devlink/internal/relay"
)

func startRelay(t *testing.T) (*relay.Hub, string) {
	t.Helper()
	hub := relay.NewHub()
	srv := relay.NewServer(hub, relay.ServerConfig{Logger: zerolog.Nop()})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return hub, ts.URL
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestServer_ForwardsBetweenTwoClients(t *testing.T) {
	_, addr := startRelay(t)
	ctx := testCtx(t)
	dialer := relay.NewDialer()

	parent, err := dialer.Dial(ctx, addr, "482913", "did:key:zParent")
	require.NoError(t, err)
	defer parent.Close()

	child, err := dialer.Dial(ctx, addr, "482913", "did:key:zChild")
	require.NoError(t, err)
	defer child.Close()

	require.NoError(t, child.Send(ctx, []byte(`{"hello":"parent"}`)))
	payload, err := parent.Next(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hello":"parent"}`, string(payload))

	require.NoError(t, parent.Send(ctx, []byte(`{"hello":"child"}`)))
	payload, err = child.Next(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hello":"child"}`, string(payload))
}

func TestServer_ThirdClientRejected(t *testing.T) {
	_, addr := startRelay(t)
	ctx := testCtx(t)
	dialer := relay.NewDialer()

	parent, err := dialer.Dial(ctx, addr, "482913", "did:key:zParent")
	require.NoError(t, err)
	defer parent.Close()
	child, err := dialer.Dial(ctx, addr, "482913", "did:key:zChild")
	require.NoError(t, err)
	defer child.Close()

	_, err = dialer.Dial(ctx, addr, "482913", "did:key:zIntruder")
	assert.ErrorIs(t, err, relay.ErrSessionFull)

	// The pairing in progress is unaffected.
	require.NoError(t, child.Send(ctx, []byte("still here")))
	payload, err := parent.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("still here"), payload)
}

func TestServer_SessionReapedAfterBothClose(t *testing.T) {
	hub, addr := startRelay(t)
	ctx := testCtx(t)
	dialer := relay.NewDialer()

	parent, err := dialer.Dial(ctx, addr, "482913", "did:key:zParent")
	require.NoError(t, err)
	child, err := dialer.Dial(ctx, addr, "482913", "did:key:zChild")
	require.NoError(t, err)

	require.NoError(t, parent.Close())
	require.NoError(t, child.Close())

	require.Eventually(t, func() bool { return hub.Sessions() == 0 },
		2*time.Second, 10*time.Millisecond, "session not reaped after both sides left")
}

func TestServer_NextHonorsContext(t *testing.T) {
	_, addr := startRelay(t)
	dialer := relay.NewDialer()

	parent, err := dialer.Dial(testCtx(t), addr, "482913", "did:key:zParent")
	require.NoError(t, err)
	defer parent.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = parent.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestServer_RequiresCodeAndDevice(t *testing.T) {
	_, addr := startRelay(t)

	resp, err := http.Get(addr + "/session/482913")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
