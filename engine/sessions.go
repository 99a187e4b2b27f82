package engine

import (
	"context"
	"sync"

	"github.com/Utiqano/football/auth"
	"github.com/Utiqano/football/logging"
	"github.com/Utiqano/football/notify"
)

// SessionContext owns one Refresher per live session. It listens to the
// identity provider: sign-in establishes a refresher, sign-out closes it
// and drops all of its derived state.
type SessionContext struct {
	engine *Engine
	hub    *notify.Hub

	mu         sync.Mutex
	refreshers map[string]*Refresher // keyed by session token
}

func NewSessionContext(e *Engine, hub *notify.Hub, provider auth.Provider) *SessionContext {
	sc := &SessionContext{
		engine:     e,
		hub:        hub,
		refreshers: make(map[string]*Refresher),
	}
	provider.OnSessionChange(sc.onSessionChange)
	return sc
}

func (sc *SessionContext) onSessionChange(event auth.Event) {
	switch event.Type {
	case auth.SignedIn:
		sc.onEstablished(event.Session)
	case auth.SignedOut:
		sc.onTerminated(event.Session)
	}
}

func (sc *SessionContext) onEstablished(session *auth.Session) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if _, ok := sc.refreshers[session.Token]; ok {
		return
	}
	sc.refreshers[session.Token] = NewRefresher(context.Background(), sc.engine, sc.hub, session)
	logging.Log.Debugf("SESSION: refresher established for %s", session.Email)
}

func (sc *SessionContext) onTerminated(session *auth.Session) {
	sc.mu.Lock()
	r, ok := sc.refreshers[session.Token]
	if ok {
		delete(sc.refreshers, session.Token)
	}
	sc.mu.Unlock()

	if ok {
		r.Close()
		logging.Log.Debugf("SESSION: refresher closed for %s", session.Email)
	}
}

// Refresher returns the live refresher for a session, creating one when
// the session predates this process (e.g. after a restart with durable
// sessions).
func (sc *SessionContext) Refresher(session *auth.Session) *Refresher {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if r, ok := sc.refreshers[session.Token]; ok {
		return r
	}
	r := NewRefresher(context.Background(), sc.engine, sc.hub, session)
	sc.refreshers[session.Token] = r
	return r
}

// Close shuts down every live refresher, for component teardown.
func (sc *SessionContext) Close() {
	sc.mu.Lock()
	refreshers := make([]*Refresher, 0, len(sc.refreshers))
	for _, r := range sc.refreshers {
		refreshers = append(refreshers, r)
	}
	sc.refreshers = make(map[string]*Refresher)
	sc.mu.Unlock()

	for _, r := range refreshers {
		r.Close()
	}
}
