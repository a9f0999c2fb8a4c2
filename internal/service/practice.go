package service

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/practice-drill/backend/internal/domain/performance"
	practicesession "github.com/practice-drill/backend/internal/domain/practice_session"
	"github.com/practice-drill/backend/internal/domain/questionbank"
	"github.com/practice-drill/backend/internal/store"
)

// PracticeService ties the engine to its collaborators: the loaded bank,
// the performance map and its store, and the session handoff store.
type PracticeService struct {
	bank     *questionbank.QuestionBank
	store    store.PerformanceStore
	sessions store.HandoffStore
	logger   *slog.Logger

	now func() time.Time
	rng *rand.Rand // nil = shared source

	mu   sync.RWMutex
	perf performance.Map

	// serializes read-modify-write of handoff entries
	sessionMu sync.Mutex
}

// Option customizes a PracticeService.
type Option func(*PracticeService)

// WithClock sets the time source used to stamp attempts.
func WithClock(now func() time.Time) Option {
	return func(ps *PracticeService) { ps.now = now }
}

// WithRand sets the random source used to shuffle sessions.
func WithRand(rng *rand.Rand) Option {
	return func(ps *PracticeService) { ps.rng = rng }
}

// NewPracticeService creates a PracticeService over an already loaded
// bank and performance map.
func NewPracticeService(bank *questionbank.QuestionBank, perf performance.Map, ps store.PerformanceStore, hs store.HandoffStore, logger *slog.Logger, opts ...Option) *PracticeService {
	if perf == nil {
		perf = performance.Map{}
	}
	svc := &PracticeService{
		bank:     bank,
		store:    ps,
		sessions: hs,
		logger:   logger,
		now:      time.Now,
		perf:     perf,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Topics lists the bank's topics in first-appearance order.
func (ps *PracticeService) Topics() []string {
	return ps.bank.Topics()
}

// Counts recomputes the live filter counters.
func (ps *PracticeService) Counts(c practicesession.Criteria) practicesession.Counts {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return practicesession.Count(ps.bank, ps.perf, c)
}

// Stats summarizes performance overall and per topic.
func (ps *PracticeService) Stats() performance.Summary {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return performance.Summarize(ps.bank, ps.perf)
}

// Performance returns a copy of the performance map.
func (ps *PracticeService) Performance() performance.Map {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.perf.Clone()
}

// StartSession filters the bank, builds a new session and hands it off.
// It returns practicesession.ErrNoEligibleQuestions when nothing matches.
func (ps *PracticeService) StartSession(ctx context.Context, c practicesession.Criteria, cfg practicesession.SessionConfig) (practicesession.PracticeSession, error) {
	ps.mu.RLock()
	eligible := practicesession.Filter(ps.bank.Questions(), ps.perf, c)
	ps.mu.RUnlock()

	session, err := practicesession.NewWithConfig(eligible, cfg, ps.rng)
	if err != nil {
		return practicesession.PracticeSession{}, err
	}

	if err := ps.sessions.SaveSession(ctx, session); err != nil {
		return practicesession.PracticeSession{}, err
	}

	ps.logger.Info("session started",
		"session_id", session.ID,
		"questions", len(session.Questions),
		"eligible", len(eligible),
		"feedback", session.Feedback,
	)
	return session, nil
}

// GetSession returns a handed-off session.
func (ps *PracticeService) GetSession(ctx context.Context, sessionID string) (practicesession.PracticeSession, error) {
	return ps.sessions.GetSession(ctx, sessionID)
}

// AbandonSession discards a session. Attempts already recorded stay.
func (ps *PracticeService) AbandonSession(ctx context.Context, sessionID string) error {
	if _, err := ps.sessions.GetSession(ctx, sessionID); err != nil {
		return err
	}
	return ps.sessions.DeleteSession(ctx, sessionID)
}

// Apply runs one user action against a session, stores the new state and
// then records a first submission in the performance map.
func (ps *PracticeService) Apply(ctx context.Context, sessionID string, action practicesession.Action) (practicesession.PracticeSession, practicesession.Outcome, error) {
	ps.sessionMu.Lock()
	defer ps.sessionMu.Unlock()

	session, err := ps.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return practicesession.PracticeSession{}, practicesession.Outcome{}, err
	}

	next, outcome, err := practicesession.Reduce(session, action)
	if err != nil {
		return session, practicesession.Outcome{}, err
	}

	// The attempt is recorded only once the answered session is stored, so
	// a retry after a failed save is still the first submission.
	if err := ps.sessions.SaveSession(ctx, next); err != nil {
		return session, practicesession.Outcome{}, err
	}

	if outcome.Recorded != nil {
		ps.record(ctx, *outcome.Recorded)
	}

	if outcome.Score != nil {
		ps.logger.Info("session completed",
			"session_id", sessionID,
			"correct", outcome.Score.Correct,
			"total", outcome.Score.Total,
		)
	}
	return next, outcome, nil
}

// record applies an attempt and writes the full map right away. A failed
// write is logged and does not fail the action.
func (ps *PracticeService) record(ctx context.Context, r practicesession.RecordedAnswer) {
	ps.mu.Lock()
	ps.perf.Record(r.QuestionID, r.Correct, ps.now())
	snapshot := ps.perf.Clone()
	ps.mu.Unlock()

	if err := ps.store.SavePerformance(context.WithoutCancel(ctx), snapshot); err != nil {
		ps.logger.Error("failed to save performance",
			"question_id", r.QuestionID,
			"error", err,
		)
	}
}
