package practicesession_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	practicesession "github.com/practice-drill/backend/internal/domain/practice_session"
)

func intPtr(n int) *int { return &n }

func TestNew_IncludesAllQuestions(t *testing.T) {
	session, err := practicesession.New(makeQuestions(10, "A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(session.Questions) != 10 {
		t.Errorf("expected 10 questions, got %d", len(session.Questions))
	}
	if session.ID == "" {
		t.Error("expected non-empty ID")
	}
	if session.CurrentIndex != 0 || session.ReviewActive || session.Completed || len(session.Answers) != 0 {
		t.Errorf("expected a fresh session, got %+v", session)
	}
	if session.Feedback != practicesession.FeedbackImmediate {
		t.Errorf("expected immediate feedback by default, got %q", session.Feedback)
	}
}

func TestNew_RandomizesQuestions(t *testing.T) {
	questions := makeQuestions(20, "A")

	// With 20 questions, ten sessions in bank order are practically impossible.
	foundDifferentOrder := false
	for i := 0; i < 10; i++ {
		session, _ := practicesession.New(questions)
		if !sameOrder(questions, session.Questions) {
			foundDifferentOrder = true
			break
		}
	}

	if !foundDifferentOrder {
		t.Error("expected questions to be randomized across sessions")
	}
}

func TestNewWithConfig_DoesNotModifyInput(t *testing.T) {
	questions := makeQuestions(20, "A")
	original := makeQuestions(20, "A")

	if _, err := practicesession.NewWithConfig(questions, practicesession.DefaultConfig(), rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !sameOrder(questions, original) {
		t.Error("expected the eligible slice to keep its order")
	}
}

func TestNewWithConfig_MaxQuestions(t *testing.T) {
	tests := []struct {
		name      string
		available int
		max       *int
		want      int
	}{
		{"all", 12, nil, 12},
		{"fewer than available", 100, intPtr(20), 20},
		{"more than available", 5, intPtr(20), 5},
		{"exactly available", 7, intPtr(7), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := practicesession.SessionConfig{MaxQuestions: tt.max, Feedback: practicesession.FeedbackDeferred}
			session, err := practicesession.NewWithConfig(makeQuestions(tt.available, "A"), config, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(session.Questions) != tt.want {
				t.Errorf("expected %d questions, got %d", tt.want, len(session.Questions))
			}
			if session.Feedback != practicesession.FeedbackDeferred {
				t.Errorf("expected deferred feedback, got %q", session.Feedback)
			}
		})
	}
}

func TestNewWithConfig_Errors(t *testing.T) {
	_, err := practicesession.NewWithConfig(nil, practicesession.DefaultConfig(), nil)
	if !errors.Is(err, practicesession.ErrNoEligibleQuestions) {
		t.Errorf("expected ErrNoEligibleQuestions, got %v", err)
	}

	config := practicesession.SessionConfig{MaxQuestions: intPtr(0)}
	_, err = practicesession.NewWithConfig(makeQuestions(3, "A"), config, nil)
	if !errors.Is(err, practicesession.ErrInvalidQuestionCount) {
		t.Errorf("expected ErrInvalidQuestionCount, got %v", err)
	}
}

func TestNewWithConfig_ShuffleIsUniform(t *testing.T) {
	const trials = 60000
	questions := makeQuestions(3, "A")
	rng := rand.New(rand.NewSource(42))

	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		session, err := practicesession.NewWithConfig(questions, practicesession.DefaultConfig(), rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var key strings.Builder
		for _, q := range session.Questions {
			key.WriteString(q.ID)
		}
		counts[key.String()]++
	}

	if len(counts) != 6 {
		t.Fatalf("expected all 6 permutations, got %d: %v", len(counts), counts)
	}
	// Expected 10000 each with a standard deviation of about 91.
	for perm, n := range counts {
		if n < 9500 || n > 10500 {
			t.Errorf("permutation %s appeared %d times, expected about 10000", perm, n)
		}
	}
}

func TestParseQuestionCount(t *testing.T) {
	tests := []struct {
		in      string
		want    *int
		wantErr bool
	}{
		{"all", nil, false},
		{"ALL", nil, false},
		{"", nil, false},
		{"10", intPtr(10), false},
		{" 25 ", intPtr(25), false},
		{"0", nil, true},
		{"-3", nil, true},
		{"ten", nil, true},
	}

	for _, tt := range tests {
		got, err := practicesession.ParseQuestionCount(tt.in)
		if tt.wantErr {
			if !errors.Is(err, practicesession.ErrInvalidQuestionCount) {
				t.Errorf("%q: expected ErrInvalidQuestionCount, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.in, err)
			continue
		}
		if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestParseFeedbackMode(t *testing.T) {
	tests := []struct {
		in      string
		want    practicesession.FeedbackMode
		wantErr bool
	}{
		{"", practicesession.FeedbackImmediate, false},
		{"immediate", practicesession.FeedbackImmediate, false},
		{"Deferred", practicesession.FeedbackDeferred, false},
		{"later", "", true},
	}

	for _, tt := range tests {
		got, err := practicesession.ParseFeedbackMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: unexpected error state: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
