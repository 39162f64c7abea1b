package relay_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devlink/internal/relay"
)

func TestForward_BeforeAnyJoinIsViolation(t *testing.T) {
	hub := relay.NewHub()

	err := hub.Forward("482913", "did:key:zParent", []byte("hello"))
	assert.ErrorIs(t, err, relay.ErrNoOwner)
}

func TestForward_DeliversToPeerOnly(t *testing.T) {
	hub := relay.NewHub()

	parent, err := hub.Join("482913", "did:key:zParent")
	require.NoError(t, err)
	child, err := hub.Join("482913", "did:key:zChild")
	require.NoError(t, err)

	require.NoError(t, hub.Forward("482913", "did:key:zChild", []byte("join")))

	assert.Equal(t, []byte("join"), <-parent.Deliveries())
	select {
	case payload := <-child.Deliveries():
		t.Fatalf("payload echoed back to sender: %q", payload)
	default:
	}
}

func TestForward_AfterSingleJoinSucceeds(t *testing.T) {
	hub := relay.NewHub()

	_, err := hub.Join("482913", "did:key:zParent")
	require.NoError(t, err)

	// One participant, nobody to deliver to, but the ordering rule is
	// satisfied.
	assert.NoError(t, hub.Forward("482913", "did:key:zParent", []byte("early")))
}

func TestForward_UnknownSenderRejected(t *testing.T) {
	hub := relay.NewHub()

	_, err := hub.Join("482913", "did:key:zParent")
	require.NoError(t, err)

	err = hub.Forward("482913", "did:key:zStranger", []byte("hi"))
	assert.ErrorIs(t, err, relay.ErrUnknownSender)
}

func TestJoin_ThirdConnectionRejected(t *testing.T) {
	hub := relay.NewHub()

	parent, err := hub.Join("482913", "did:key:zParent")
	require.NoError(t, err)
	_, err = hub.Join("482913", "did:key:zChild")
	require.NoError(t, err)

	_, err = hub.Join("482913", "did:key:zIntruder")
	assert.ErrorIs(t, err, relay.ErrSessionFull)

	// The existing pairing is undisturbed.
	require.NoError(t, hub.Forward("482913", "did:key:zChild", []byte("still works")))
	assert.Equal(t, []byte("still works"), <-parent.Deliveries())
}

func TestForward_PreservesSenderOrder(t *testing.T) {
	hub := relay.NewHub()

	parent, err := hub.Join("482913", "did:key:zParent")
	require.NoError(t, err)
	_, err = hub.Join("482913", "did:key:zChild")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, hub.Forward("482913", "did:key:zChild", []byte(fmt.Sprintf("m%d", i))))
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, []byte(fmt.Sprintf("m%d", i)), <-parent.Deliveries())
	}
}

func TestLeave_ReapsEmptySession(t *testing.T) {
	hub := relay.NewHub()

	parent, err := hub.Join("482913", "did:key:zParent")
	require.NoError(t, err)
	child, err := hub.Join("482913", "did:key:zChild")
	require.NoError(t, err)
	assert.Equal(t, 1, hub.Sessions())

	hub.Leave(parent)
	assert.Equal(t, 1, hub.Sessions())
	hub.Leave(child)
	assert.Equal(t, 0, hub.Sessions())

	// The code is reusable after reaping, with a fresh owner.
	_, err = hub.Join("482913", "did:key:zOther")
	require.NoError(t, err)
	assert.Equal(t, 1, hub.Sessions())

	// Leaving twice is harmless.
	hub.Leave(parent)
}

func TestLeave_ClosesDeliveryStream(t *testing.T) {
	hub := relay.NewHub()

	parent, err := hub.Join("482913", "did:key:zParent")
	require.NoError(t, err)
	hub.Leave(parent)

	_, ok := <-parent.Deliveries()
	assert.False(t, ok)
}

func TestJoin_ConcurrentFirstJoinsPickOneOwner(t *testing.T) {
	hub := relay.NewHub()

	const attempts = 8
	var wg sync.WaitGroup
	conns := make(chan *relay.Conn, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := hub.Join("482913", fmt.Sprintf("did:key:z%d", i))
			if err == nil {
				conns <- c
			}
		}(i)
	}
	wg.Wait()
	close(conns)

	var joined []*relay.Conn
	for c := range conns {
		joined = append(joined, c)
	}
	require.Len(t, joined, 2, "exactly two of the racing joins may win")

	// Whoever won, forwarding between the two works and nothing echoes.
	require.NoError(t, hub.Forward("482913", joined[0].ID(), []byte("ping")))
	assert.Equal(t, []byte("ping"), <-joined[1].Deliveries())
}

func TestSessions_IsolatedByCode(t *testing.T) {
	hub := relay.NewHub()

	a, err := hub.Join("111111", "did:key:zA")
	require.NoError(t, err)
	_, err = hub.Join("222222", "did:key:zB")
	require.NoError(t, err)
	assert.Equal(t, 2, hub.Sessions())

	// Forwarding on one code never crosses into the other.
	require.NoError(t, hub.Forward("111111", "did:key:zA", []byte("x")))
	require.NoError(t, hub.Forward("222222", "did:key:zB", []byte("y")))
	select {
	case payload := <-a.Deliveries():
		t.Fatalf("cross-session delivery: %q", payload)
	default:
	}
}
