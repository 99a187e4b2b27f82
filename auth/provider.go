// Package auth is the identity provider: it verifies credentials, issues
// opaque bearer tokens and notifies listeners of session lifecycle events.
package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Utiqano/football/logging"
	"github.com/Utiqano/football/metrics"
	"github.com/Utiqano/football/storage"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrSessionExpired = errors.New("session expired")

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
const tokenLength = 32

// Session is the authenticated principal handed to the rest of the
// service. It is read-only outside this package.
type Session struct {
	Token  string
	UserID string
	Email  string
}

type EventType string

const (
	SignedIn  EventType = "signed_in"
	SignedOut EventType = "signed_out"
)

// Event describes one session lifecycle change. Session is the affected
// principal for both event types.
type Event struct {
	Type    EventType
	Session *Session
}

// Listener receives session lifecycle events.
type Listener func(Event)

// Provider is the surface the engine and transport consume.
type Provider interface {
	SignInWithCredentials(ctx context.Context, email, password string) (*Session, error)
	GetSession(ctx context.Context, token string) (*Session, error)
	SignOut(ctx context.Context, token string) error
	OnSessionChange(l Listener)
}

type StoreProvider struct {
	users      storage.UserStorage
	sessions   storage.SessionStorage
	sessionTTL time.Duration

	mu        sync.Mutex
	listeners []Listener
}

func NewStoreProvider(users storage.UserStorage, sessions storage.SessionStorage, sessionTTL time.Duration) *StoreProvider {
	return &StoreProvider{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

func (p *StoreProvider) SignInWithCredentials(ctx context.Context, email, password string) (*Session, error) {
	user, err := p.users.Get(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logging.Log.Warnf("AUTH: sign-in attempt for unknown user %s", email)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logging.Log.Warnf("AUTH: wrong password for %s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := gonanoid.Generate(tokenAlphabet, tokenLength)
	if err != nil {
		logging.Log.Errorf("AUTH: failed to generate session token: %v", err)
		return nil, err
	}

	now := time.Now().UTC()
	record := &storage.Session{
		Token:     token,
		UserID:    user.UserID,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(p.sessionTTL),
	}
	if err := p.sessions.Put(ctx, record); err != nil {
		return nil, err
	}

	session := &Session{Token: token, UserID: user.UserID, Email: user.Email}
	metrics.SignIns.Inc()
	logging.Log.Infof("AUTH: signed in %s", email)
	p.notify(Event{Type: SignedIn, Session: session})
	return session, nil
}

func (p *StoreProvider) GetSession(ctx context.Context, token string) (*Session, error) {
	record, err := p.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if time.Now().UTC().After(record.ExpiresAt) {
		// Expired tokens are removed eagerly so they cannot pile up.
		if err := p.sessions.Delete(ctx, token); err != nil {
			logging.Log.Errorf("AUTH: failed to delete expired session: %v", err)
		}
		return nil, ErrSessionExpired
	}
	return &Session{Token: record.Token, UserID: record.UserID, Email: record.Email}, nil
}

func (p *StoreProvider) SignOut(ctx context.Context, token string) error {
	record, err := p.sessions.Get(ctx, token)
	if err != nil {
		return err
	}
	if err := p.sessions.Delete(ctx, token); err != nil {
		return err
	}
	logging.Log.Infof("AUTH: signed out %s", record.Email)
	p.notify(Event{Type: SignedOut, Session: &Session{
		Token:  record.Token,
		UserID: record.UserID,
		Email:  record.Email,
	}})
	return nil
}

// OnSessionChange registers a listener fired on every sign-in and
// sign-out.
func (p *StoreProvider) OnSessionChange(l Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, l)
}

func (p *StoreProvider) notify(event Event) {
	p.mu.Lock()
	listeners := make([]Listener, len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	for _, l := range listeners {
		l(event)
	}
}

// HashPassword wraps bcrypt for the admin user-creation path.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
