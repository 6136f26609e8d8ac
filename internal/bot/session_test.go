package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionDefaultsToIdle(t *testing.T) {
	sessions := newSessionStore()

	assert.Equal(t, stateIdle, sessions.Get(1))
}

func TestSessionSetAndClear(t *testing.T) {
	sessions := newSessionStore()

	sessions.Set(1, stateAwaitingBio)
	assert.Equal(t, stateAwaitingBio, sessions.Get(1))

	// Other chats are unaffected.
	assert.Equal(t, stateIdle, sessions.Get(2))

	sessions.Clear(1)
	assert.Equal(t, stateIdle, sessions.Get(1))
}

func TestSessionSetOverwrites(t *testing.T) {
	sessions := newSessionStore()

	sessions.Set(1, stateAwaitingBio)
	sessions.Set(1, stateAwaitingBroadcast)
	assert.Equal(t, stateAwaitingBroadcast, sessions.Get(1))

	sessions.Set(1, stateIdle)
	assert.Equal(t, stateIdle, sessions.Get(1))
}
