// Package engine implements the weekly voting and attendance cycle: one
// attendance answer and one MVP vote per user per Thursday, with the
// participant list and the ranked tally derived from the primary rows on
// every read.
package engine

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Utiqano/football/auth"
	"github.com/Utiqano/football/logging"
	"github.com/Utiqano/football/metrics"
	"github.com/Utiqano/football/notify"
	"github.com/Utiqano/football/storage"
	"github.com/Utiqano/football/week"
)

// Answer is a user's attendance state for one week.
type Answer int

const (
	Unanswered Answer = iota
	Yes
	No
)

func (a Answer) String() string {
	switch a {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unanswered"
	}
}

// Participant is one confirmed attendee, name derived from the email
// local part.
type Participant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TallyEntry is one candidate's vote count. Entries are ordered by votes
// descending; ties keep the store's insertion order.
type TallyEntry struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Votes int    `json:"votes"`
}

// CelebrationWindow is how long the celebratory state stays armed after a
// positive answer, mirroring the confetti duration in the web client.
const CelebrationWindow = 4 * time.Second

// Engine is the weekly cycle engine. All operations are scoped to the
// current week, derived from the injected clock on every call.
type Engine struct {
	participation storage.ParticipationStorage
	votes         storage.MvpVoteStorage
	hub           *notify.Hub
	now           func() time.Time

	mu           sync.Mutex
	celebrations map[string]time.Time // user id -> celebration deadline
}

func New(participation storage.ParticipationStorage, votes storage.MvpVoteStorage, hub *notify.Hub) *Engine {
	return &Engine{
		participation: participation,
		votes:         votes,
		hub:           hub,
		now:           time.Now,
		celebrations:  make(map[string]time.Time),
	}
}

// WithClock overrides the wall clock, for tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Week returns the Thursday of the current cycle.
func (e *Engine) Week() time.Time {
	return week.CurrentThursday(e.now())
}

// WeekKey returns the partition key of the current cycle.
func (e *Engine) WeekKey() string {
	return week.Key(e.Week())
}

// MyAnswer reports the session user's attendance state for this week.
func (e *Engine) MyAnswer(ctx context.Context, session *auth.Session) (Answer, error) {
	if session == nil {
		return Unanswered, ErrNoPrincipal
	}

	p, err := e.participation.Get(ctx, e.WeekKey(), session.UserID)
	if err != nil {
		return Unanswered, err
	}
	if p == nil {
		return Unanswered, nil
	}
	if p.Participating {
		return Yes, nil
	}
	return No, nil
}

// SubmitAnswer upserts the attendance answer for this week. Submitting
// again overwrites; there is no lock-in in either direction. A positive
// answer arms the celebration window. The returned bool reports whether
// the celebration is active.
func (e *Engine) SubmitAnswer(ctx context.Context, session *auth.Session, participating bool) (bool, error) {
	if session == nil {
		return false, ErrNoPrincipal
	}

	record := &storage.Participation{
		WeekDate:      e.WeekKey(),
		UserID:        session.UserID,
		Email:         session.Email,
		Participating: participating,
		AnsweredAt:    e.now().UTC(),
	}
	if err := e.participation.Upsert(ctx, record); err != nil {
		return false, err
	}

	metrics.AnswersSubmitted.WithLabelValues(strconv.FormatBool(participating)).Inc()
	logging.Log.Infof("ATTEND: %s answered %t for week %s", session.Email, participating, record.WeekDate)

	if participating {
		e.mu.Lock()
		e.celebrations[session.UserID] = e.now().Add(CelebrationWindow)
		e.mu.Unlock()
	}

	e.hub.Publish(notify.ScopeParticipation)
	return e.Celebrating(session.UserID), nil
}

// Celebrating reports whether the user's celebration window is still
// open. Expired entries are cleared lazily.
func (e *Engine) Celebrating(userID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	deadline, ok := e.celebrations[userID]
	if !ok {
		return false
	}
	if e.now().After(deadline) {
		delete(e.celebrations, userID)
		return false
	}
	return true
}

// MyVote returns the candidate email the session user voted for this
// week, or empty when no vote was cast yet.
func (e *Engine) MyVote(ctx context.Context, session *auth.Session) (string, error) {
	if session == nil {
		return "", ErrNoPrincipal
	}

	vote, err := e.votes.Get(ctx, e.WeekKey(), session.UserID)
	if err != nil {
		return "", err
	}
	if vote == nil {
		return "", nil
	}
	return vote.MvpEmail, nil
}

// CastVote upserts the session user's MVP vote for this week. Casting a
// second time with a different candidate changes the vote, it never adds
// one. Voters who did not answer yes for the week are rejected; voting
// for yourself is allowed.
func (e *Engine) CastVote(ctx context.Context, session *auth.Session, candidateEmail string) error {
	if session == nil {
		return ErrNoPrincipal
	}

	answer, err := e.MyAnswer(ctx, session)
	if err != nil {
		return err
	}
	if answer != Yes {
		logging.Log.Warnf("MVP: %s tried to vote without participating", session.Email)
		return ErrNotParticipating
	}

	vote := &storage.MvpVote{
		MatchWeek: e.WeekKey(),
		VoterID:   session.UserID,
		MvpEmail:  candidateEmail,
		CastAt:    e.now().UTC(),
	}
	if err := e.votes.Upsert(ctx, vote); err != nil {
		return err
	}

	metrics.VotesCast.Inc()
	logging.Log.Infof("MVP: %s voted for %s in week %s", session.Email, candidateEmail, vote.MatchWeek)
	e.hub.Publish(notify.ScopeVotes)
	return nil
}

// Participants derives the confirmed attendee list for this week. Users
// who answered no or not at all are excluded. Pure derived read, never
// cached.
func (e *Engine) Participants(ctx context.Context) ([]Participant, error) {
	answers, err := e.participation.GetByWeek(ctx, e.WeekKey())
	if err != nil {
		return nil, err
	}

	participants := make([]Participant, 0, len(answers))
	for _, a := range answers {
		if !a.Participating {
			continue
		}
		participants = append(participants, Participant{
			Name:  localPart(a.Email),
			Email: a.Email,
		})
	}
	return participants, nil
}

// Tally derives the ranked MVP vote counts for this week, strictly
// descending by votes. The first entry is the MVP; a first-place tie is
// arbitrated by store order, accepted non-determinism.
func (e *Engine) Tally(ctx context.Context) ([]TallyEntry, error) {
	votes, err := e.votes.GetByWeek(ctx, e.WeekKey())
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(votes))
	for _, v := range votes {
		if _, seen := counts[v.MvpEmail]; !seen {
			order = append(order, v.MvpEmail)
		}
		counts[v.MvpEmail]++
	}

	tally := make([]TallyEntry, 0, len(order))
	for _, email := range order {
		tally = append(tally, TallyEntry{
			Name:  localPart(email),
			Email: email,
			Votes: counts[email],
		})
	}

	sort.SliceStable(tally, func(i, j int) bool {
		return tally[i].Votes > tally[j].Votes
	})
	return tally, nil
}

func localPart(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}
