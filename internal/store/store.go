package store

import (
	"context"
	"errors"

	"github.com/practice-drill/backend/internal/domain/performance"
	practicesession "github.com/practice-drill/backend/internal/domain/practice_session"
)

var (
	ErrNotFound = errors.New("not found")
)

// PerformanceStore persists the whole performance map as one blob.
// Save is a full overwrite; the last write wins.
type PerformanceStore interface {
	LoadPerformance(ctx context.Context) (performance.Map, error)
	SavePerformance(ctx context.Context, m performance.Map) error
}

// HandoffStore carries practice sessions between requests of one
// browsing session. Entries are transient and never outlive the process
// that created them.
type HandoffStore interface {
	SaveSession(ctx context.Context, s practicesession.PracticeSession) error
	GetSession(ctx context.Context, id string) (practicesession.PracticeSession, error)
	DeleteSession(ctx context.Context, id string) error
}
