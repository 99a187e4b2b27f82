package storage

import (
	"context"
	"sync"
)

// In-memory implementations of the storage interfaces, used for local
// development without AWS credentials and by the test suites. Per-week
// slices keep insertion order so tally ties resolve the same way the
// store returned them.

type MemoryParticipationStorage struct {
	mu      sync.RWMutex
	byWeek  map[string][]*Participation
	failOps bool // when set, every call fails; simulates an unavailable store
}

func NewMemoryParticipationStorage() *MemoryParticipationStorage {
	return &MemoryParticipationStorage{byWeek: make(map[string][]*Participation)}
}

// SetFail toggles simulated store unavailability.
func (s *MemoryParticipationStorage) SetFail(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOps = fail
}

func (s *MemoryParticipationStorage) Get(_ context.Context, weekDate, userID string) (*Participation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failOps {
		return nil, errStoreUnavailable
	}
	for _, p := range s.byWeek[weekDate] {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *MemoryParticipationStorage) GetByWeek(_ context.Context, weekDate string) ([]*Participation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failOps {
		return nil, errStoreUnavailable
	}
	out := make([]*Participation, 0, len(s.byWeek[weekDate]))
	for _, p := range s.byWeek[weekDate] {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (s *MemoryParticipationStorage) Upsert(_ context.Context, p *Participation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOps {
		return errStoreUnavailable
	}
	cp := *p
	for i, existing := range s.byWeek[p.WeekDate] {
		if existing.UserID == p.UserID {
			s.byWeek[p.WeekDate][i] = &cp
			return nil
		}
	}
	s.byWeek[p.WeekDate] = append(s.byWeek[p.WeekDate], &cp)
	return nil
}

type MemoryMvpVoteStorage struct {
	mu      sync.RWMutex
	byWeek  map[string][]*MvpVote
	failOps bool
}

func NewMemoryMvpVoteStorage() *MemoryMvpVoteStorage {
	return &MemoryMvpVoteStorage{byWeek: make(map[string][]*MvpVote)}
}

// SetFail toggles simulated store unavailability.
func (s *MemoryMvpVoteStorage) SetFail(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOps = fail
}

func (s *MemoryMvpVoteStorage) Get(_ context.Context, matchWeek, voterID string) (*MvpVote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failOps {
		return nil, errStoreUnavailable
	}
	for _, v := range s.byWeek[matchWeek] {
		if v.VoterID == voterID {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *MemoryMvpVoteStorage) GetByWeek(_ context.Context, matchWeek string) ([]*MvpVote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failOps {
		return nil, errStoreUnavailable
	}
	out := make([]*MvpVote, 0, len(s.byWeek[matchWeek]))
	for _, v := range s.byWeek[matchWeek] {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (s *MemoryMvpVoteStorage) Upsert(_ context.Context, vote *MvpVote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOps {
		return errStoreUnavailable
	}
	cp := *vote
	for i, existing := range s.byWeek[vote.MatchWeek] {
		if existing.VoterID == vote.VoterID {
			s.byWeek[vote.MatchWeek][i] = &cp
			return nil
		}
	}
	s.byWeek[vote.MatchWeek] = append(s.byWeek[vote.MatchWeek], &cp)
	return nil
}

type MemoryUserStorage struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewMemoryUserStorage() *MemoryUserStorage {
	return &MemoryUserStorage{users: make(map[string]*User)}
}

func (s *MemoryUserStorage) Get(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *MemoryUserStorage) Create(_ context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return ErrUserAlreadyExists
	}
	cp := *user
	s.users[user.Email] = &cp
	return nil
}

type MemorySessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{sessions: make(map[string]*Session)}
}

func (s *MemorySessionStorage) Get(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

func (s *MemorySessionStorage) Put(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *session
	s.sessions[session.Token] = &cp
	return nil
}

func (s *MemorySessionStorage) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
