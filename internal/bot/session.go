package bot

import "sync"

// wizardState models the two-step admin conversations (request input,
// then consume the next text message from the same chat). Idle is the
// zero value and the default for any chat not in the map.
type wizardState int

const (
	stateIdle wizardState = iota
	stateAwaitingBio
	stateAwaitingBroadcast
	stateAwaitingProduct
)

// sessionStore maps chat id to wizard state. State lives in process
// only and does not survive restarts; there is no timeout, so a chat
// can stay in an awaiting state until the actor answers or cancels.
// Each entry is scoped to one chat, so a stalled wizard never blocks
// another actor.
type sessionStore struct {
	mu     sync.RWMutex
	states map[int64]wizardState
}

func newSessionStore() *sessionStore {
	return &sessionStore{states: make(map[int64]wizardState)}
}

func (s *sessionStore) Get(chatID int64) wizardState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[chatID]
}

func (s *sessionStore) Set(chatID int64, state wizardState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state == stateIdle {
		delete(s.states, chatID)
		return
	}
	s.states[chatID] = state
}

func (s *sessionStore) Clear(chatID int64) {
	s.Set(chatID, stateIdle)
}
