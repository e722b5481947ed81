package game

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return NewRegistry(&captureGateway{}, &MockWordSource{}, zerolog.Nop())
}

func TestRegistry_CreateSession(t *testing.T) {
	r := newTestRegistry()

	sess, host, err := r.CreateSession(testSettings(), "conn-1", "alice", "🐶")
	require.NoError(t, err)
	require.NotNil(t, sess)

	assert.Len(t, sess.ID(), codeLength)
	for _, ch := range sess.ID() {
		assert.Contains(t, codeAlphabet, string(ch))
	}
	assert.True(t, host.IsHost)
	assert.Equal(t, host.ID, sess.HostID())
}

func TestRegistry_FindSession_CaseInsensitive(t *testing.T) {
	r := newTestRegistry()
	sess, _, err := r.CreateSession(testSettings(), "conn-1", "alice", "")
	require.NoError(t, err)

	found, err := r.FindSession(strings.ToLower(sess.ID()))
	require.NoError(t, err)
	assert.Same(t, sess, found)

	_, err = r.FindSession("NOSUCH")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRegistry_ResolveConnection(t *testing.T) {
	r := newTestRegistry()
	sess, host, err := r.CreateSession(testSettings(), "conn-1", "alice", "")
	require.NoError(t, err)
	joined, err := sess.AddPlayer("conn-2", "bob", "", false)
	require.NoError(t, err)

	gotSess, gotPlayer, ok := r.ResolveConnection("conn-2")
	require.True(t, ok)
	assert.Same(t, sess, gotSess)
	assert.Equal(t, joined.ID, gotPlayer.ID)

	_, _, ok = r.ResolveConnection("conn-1")
	assert.True(t, ok)
	assert.NotEqual(t, "", host.ID)

	_, _, ok = r.ResolveConnection("ghost")
	assert.False(t, ok)
}

func TestRegistry_HandleDisconnect(t *testing.T) {
	r := newTestRegistry()
	sess, host, err := r.CreateSession(testSettings(), "conn-1", "alice", "")
	require.NoError(t, err)
	sess.AddPlayer("conn-2", "bob", "", false)

	gotSess, gotPlayer, ok := r.HandleDisconnect("conn-1")
	require.True(t, ok)
	assert.Same(t, sess, gotSess)
	assert.Equal(t, host.ID, gotPlayer.ID)
	assert.True(t, r.Contains(sess.ID()), "session with members survives")
	assert.NotEqual(t, host.ID, sess.HostID(), "host migrated")

	_, _, ok = r.HandleDisconnect("conn-2")
	require.True(t, ok)
	assert.False(t, r.Contains(sess.ID()), "empty session is destroyed")

	_, _, ok = r.HandleDisconnect("conn-2")
	assert.False(t, ok, "unresolvable connection is a no-op")
}

func TestRegistry_HandleDisconnect_SweepsEverySession(t *testing.T) {
	r := newTestRegistry()
	first, _, err := r.CreateSession(testSettings(), "conn-1", "alice", "")
	require.NoError(t, err)
	second, _, err := r.CreateSession(testSettings(), "conn-2", "bob", "")
	require.NoError(t, err)

	// the same connection seated in both sessions
	_, err = second.AddPlayer("conn-1", "alice", "", false)
	require.NoError(t, err)

	_, _, ok := r.HandleDisconnect("conn-1")
	require.True(t, ok)

	assert.False(t, r.Contains(first.ID()), "emptied session is destroyed")
	assert.True(t, r.Contains(second.ID()))
	_, ok = second.PlayerByConn("conn-1")
	assert.False(t, ok, "no ghost player left behind")
	_, _, ok = r.ResolveConnection("conn-1")
	assert.False(t, ok)
}

func TestRegistry_CodesUniqueUnderRapidCreation(t *testing.T) {
	r := newTestRegistry()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		sess, _, err := r.CreateSession(testSettings(), fmt.Sprintf("conn-%d", i), "p", "")
		require.NoError(t, err)
		assert.False(t, seen[sess.ID()], "duplicate room code %s", sess.ID())
		seen[sess.ID()] = true
	}
}
