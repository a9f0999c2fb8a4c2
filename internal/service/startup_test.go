package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/practice-drill/backend/internal/domain/performance"
	"github.com/practice-drill/backend/internal/domain/questionbank"
	"github.com/practice-drill/backend/internal/service"
)

type fakeLoader struct {
	bank   *questionbank.QuestionBank
	source string
}

func (f *fakeLoader) Load(ctx context.Context, source string) *questionbank.QuestionBank {
	f.source = source
	return f.bank
}

func TestLoadInitialState(t *testing.T) {
	perf := performance.Map{}
	perf.Record("b1", true, fixedNow)
	loader := &fakeLoader{bank: testBank(t)}

	bank, got := service.LoadInitialState(context.Background(), loader, "questions.json", &fakeStore{loaded: perf}, discardLogger)

	if loader.source != "questions.json" {
		t.Errorf("expected source to be passed through, got %q", loader.source)
	}
	if bank.Len() != 3 {
		t.Errorf("expected 3 questions, got %d", bank.Len())
	}
	if !got.Has("b1") {
		t.Error("expected the stored performance map")
	}
}

func TestLoadInitialState_Fallbacks(t *testing.T) {
	loader := &fakeLoader{}
	ps := &fakeStore{loadErr: errors.New("corrupt")}

	bank, perf := service.LoadInitialState(context.Background(), loader, "missing.json", ps, discardLogger)

	if bank == nil || bank.Len() != 0 {
		t.Errorf("expected an empty bank, got %v", bank)
	}
	if perf == nil || len(perf) != 0 {
		t.Errorf("expected an empty map, got %v", perf)
	}
}

// blockingLoader never returns until release is closed.
type blockingLoader struct {
	release chan struct{}
}

func (b *blockingLoader) Load(ctx context.Context, source string) *questionbank.QuestionBank {
	<-b.release
	return questionbank.New()
}

func TestLoadInitialState_Cancelled(t *testing.T) {
	loader := &blockingLoader{release: make(chan struct{})}
	defer close(loader.release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bank, perf := service.LoadInitialState(ctx, loader, "slow.json", &fakeStore{}, discardLogger)

	if bank == nil || bank.Len() != 0 {
		t.Errorf("expected an empty bank, got %v", bank)
	}
	if perf == nil {
		t.Error("expected a usable map")
	}
}
