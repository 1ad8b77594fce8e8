package game

import "sync"

// gameLocks serializes work per game. A game's entry lives only while some
// caller holds or waits for its lock.
type gameLocks struct {
	mu    sync.Mutex
	games map[string]*gameLock
}

type gameLock struct {
	mu   sync.Mutex
	refs int
}

// lock blocks until the caller owns the game and returns the release func
func (l *gameLocks) lock(gameID string) func() {
	l.mu.Lock()
	if l.games == nil {
		l.games = make(map[string]*gameLock)
	}
	gl, ok := l.games[gameID]
	if !ok {
		gl = &gameLock{}
		l.games[gameID] = gl
	}
	gl.refs++
	l.mu.Unlock()

	gl.mu.Lock()
	return func() {
		gl.mu.Unlock()

		l.mu.Lock()
		defer l.mu.Unlock()
		gl.refs--
		if gl.refs == 0 {
			delete(l.games, gameID)
		}
	}
}

// tracked reports how many games currently have an entry
func (l *gameLocks) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.games)
}
