package service

import (
	"context"
	"log/slog"

	"github.com/practice-drill/backend/internal/domain/performance"
	"github.com/practice-drill/backend/internal/domain/questionbank"
	"github.com/practice-drill/backend/internal/store"
	"github.com/practice-drill/backend/internal/worker"
)

// BankLoader retrieves the question bank. It never fails; an unavailable
// bank comes back empty.
type BankLoader interface {
	Load(ctx context.Context, source string) *questionbank.QuestionBank
}

const (
	jobBank        = "bank"
	jobPerformance = "performance"
)

type loadOutput struct {
	bank *questionbank.QuestionBank
	perf performance.Map
	err  error
}

// LoadInitialState fetches the question bank and reads the performance
// map concurrently and waits for both. Failures fall back to empty
// values, so the result is always usable.
func LoadInitialState(ctx context.Context, loader BankLoader, source string, ps store.PerformanceStore, logger *slog.Logger) (*questionbank.QuestionBank, performance.Map) {
	pool := worker.NewPool[loadOutput](2, 2)
	defer pool.Close()

	pool.Submit(jobBank, func() loadOutput {
		return loadOutput{bank: loader.Load(ctx, source)}
	})
	pool.Submit(jobPerformance, func() loadOutput {
		m, err := ps.LoadPerformance(ctx)
		return loadOutput{perf: m, err: err}
	})

	bank := questionbank.New()
	perf := performance.Map{}

	outputs, err := pool.Collect(ctx)
	if err != nil {
		logger.Warn("initial load cancelled, using what arrived", "error", err)
	}

	if out, ok := outputs[jobBank]; ok && out.bank != nil {
		bank = out.bank
	}
	if out, ok := outputs[jobPerformance]; ok {
		if out.err != nil {
			logger.Warn("performance data unavailable, starting empty", "error", out.err)
		}
		if out.perf != nil {
			perf = out.perf
		}
	}

	logger.Info("initial state loaded", "questions", bank.Len(), "records", len(perf))
	return bank, perf
}
