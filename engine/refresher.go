package engine

import (
	"context"
	"sync"
	"time"

	"github.com/Utiqano/football/auth"
	"github.com/Utiqano/football/logging"
	"github.com/Utiqano/football/metrics"
	"github.com/Utiqano/football/notify"
	"github.com/Utiqano/football/week"
)

// Snapshot is the atomically swapped view bundle presented to one user:
// their own answer and vote plus the shared participant list and tally,
// all for the current week.
type Snapshot struct {
	WeekDate     string        `json:"week_date"`
	WeekLabel    string        `json:"week_label"`
	Answer       string        `json:"answer"`
	Celebrating  bool          `json:"celebrating"`
	Participants []Participant `json:"participants"`
	Count        int           `json:"count"`
	MyVote       string        `json:"my_vote,omitempty"`
	Tally        []TallyEntry  `json:"tally"`
	RefreshedAt  time.Time     `json:"refreshed_at"`
}

// Refresher keeps one user's Snapshot no more than one notification
// behind the store. It owns a hub subscription for the lifetime of the
// session and must be Closed on sign-out.
type Refresher struct {
	engine  *Engine
	session *auth.Session
	sub     *notify.Subscription

	mu      sync.RWMutex
	current Snapshot

	closeOnce sync.Once
	done      chan struct{}
}

// NewRefresher subscribes to the hub, runs one initial refresh and then
// keeps refreshing on every invalidation until Close.
func NewRefresher(ctx context.Context, e *Engine, hub *notify.Hub, session *auth.Session) *Refresher {
	r := &Refresher{
		engine:  e,
		session: session,
		sub:     hub.Subscribe(),
		done:    make(chan struct{}),
	}
	r.refresh(ctx)
	go r.run()
	return r
}

func (r *Refresher) run() {
	for {
		select {
		case _, ok := <-r.sub.C:
			if !ok {
				return
			}
			r.refresh(context.Background())
		case <-r.done:
			return
		}
	}
}

// refresh re-runs the four reads in parallel and swaps all results into
// the published snapshot in one step. A failed read degrades to its empty
// value instead of aborting the batch.
func (r *Refresher) refresh(ctx context.Context) {
	thursday := r.engine.Week()

	var (
		wg           sync.WaitGroup
		answer       Answer
		participants []Participant
		myVote       string
		tally        []TallyEntry
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		a, err := r.engine.MyAnswer(ctx, r.session)
		if err != nil {
			logging.Log.Errorf("REFRESH: answer read failed: %v", err)
			a = Unanswered
		}
		answer = a
	}()
	go func() {
		defer wg.Done()
		list, err := r.engine.Participants(ctx)
		if err != nil {
			logging.Log.Errorf("REFRESH: participants read failed: %v", err)
			list = nil
		}
		participants = list
	}()
	go func() {
		defer wg.Done()
		v, err := r.engine.MyVote(ctx, r.session)
		if err != nil {
			logging.Log.Errorf("REFRESH: vote read failed: %v", err)
			v = ""
		}
		myVote = v
	}()
	go func() {
		defer wg.Done()
		entries, err := r.engine.Tally(ctx)
		if err != nil {
			logging.Log.Errorf("REFRESH: tally read failed: %v", err)
			entries = nil
		}
		tally = entries
	}()
	wg.Wait()

	if participants == nil {
		participants = []Participant{}
	}
	if tally == nil {
		tally = []TallyEntry{}
	}

	snapshot := Snapshot{
		WeekDate:     week.Key(thursday),
		WeekLabel:    week.Label(thursday),
		Answer:       answer.String(),
		Celebrating:  r.engine.Celebrating(r.session.UserID),
		Participants: participants,
		Count:        len(participants),
		MyVote:       myVote,
		Tally:        tally,
		RefreshedAt:  time.Now().UTC(),
	}

	r.mu.Lock()
	r.current = snapshot
	r.mu.Unlock()

	metrics.RefreshCycles.Inc()
}

// Snapshot returns the current view bundle. The four fields always come
// from the same refresh cycle.
func (r *Refresher) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Refresh forces a synchronous refresh, used after the caller's own
// write was acknowledged so the next read reflects it.
func (r *Refresher) Refresh(ctx context.Context) Snapshot {
	r.refresh(ctx)
	return r.Snapshot()
}

// Close unsubscribes from the hub and discards all derived state. Safe to
// call more than once.
func (r *Refresher) Close() {
	r.closeOnce.Do(func() {
		close(r.done)
		r.sub.Unsubscribe()
		r.mu.Lock()
		r.current = Snapshot{}
		r.mu.Unlock()
	})
}
