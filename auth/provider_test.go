package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Utiqano/football/logging"
	"github.com/Utiqano/football/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProvider(t *testing.T) (*StoreProvider, *storage.MemorySessionStorage) {
	t.Helper()
	logging.Log = logrus.New()

	users := storage.NewMemoryUserStorage()
	sessions := storage.NewMemorySessionStorage()

	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &storage.User{
		Email:        "alice@x.com",
		UserID:       "user-alice",
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}))

	return NewStoreProvider(users, sessions, time.Hour), sessions
}

func TestSignInWithCredentials(t *testing.T) {
	provider, _ := setupProvider(t)

	t.Run("Happy path - valid credentials", func(t *testing.T) {
		session, err := provider.SignInWithCredentials(context.Background(), "alice@x.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "alice@x.com", session.Email)
		assert.Equal(t, "user-alice", session.UserID)
		assert.NotEmpty(t, session.Token)
	})

	t.Run("Unhappy path - wrong password", func(t *testing.T) {
		_, err := provider.SignInWithCredentials(context.Background(), "alice@x.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unhappy path - unknown user", func(t *testing.T) {
		_, err := provider.SignInWithCredentials(context.Background(), "nobody@x.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials, "Unknown user must not be distinguishable from wrong password")
	})
}

func TestGetSessionRoundTrip(t *testing.T) {
	provider, _ := setupProvider(t)

	created, err := provider.SignInWithCredentials(context.Background(), "alice@x.com", "correct-horse")
	require.NoError(t, err)

	session, err := provider.GetSession(context.Background(), created.Token)
	require.NoError(t, err)
	assert.Equal(t, created.UserID, session.UserID)
	assert.Equal(t, created.Email, session.Email)
}

func TestGetSessionExpired(t *testing.T) {
	provider, sessions := setupProvider(t)

	expired := &storage.Session{
		Token:     "stale-token",
		UserID:    "user-alice",
		Email:     "alice@x.com",
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}
	require.NoError(t, sessions.Put(context.Background(), expired))

	_, err := provider.GetSession(context.Background(), "stale-token")
	assert.ErrorIs(t, err, ErrSessionExpired)

	// The stale record is gone after the failed lookup.
	_, err = sessions.Get(context.Background(), "stale-token")
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSignOutNotifiesListeners(t *testing.T) {
	provider, _ := setupProvider(t)

	var events []Event
	provider.OnSessionChange(func(e Event) {
		events = append(events, e)
	})

	session, err := provider.SignInWithCredentials(context.Background(), "alice@x.com", "correct-horse")
	require.NoError(t, err)
	require.NoError(t, provider.SignOut(context.Background(), session.Token))

	require.Len(t, events, 2)
	assert.Equal(t, SignedIn, events[0].Type)
	assert.Equal(t, SignedOut, events[1].Type)
	assert.Equal(t, session.Token, events[1].Session.Token, "Sign-out carries the terminated session")

	_, err = provider.GetSession(context.Background(), session.Token)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}
