package practicesession

import (
	"fmt"
	"strconv"
	"strings"
)

// FeedbackMode controls when correctness is revealed during a session.
type FeedbackMode string

const (
	FeedbackImmediate FeedbackMode = "immediate"
	FeedbackDeferred  FeedbackMode = "deferred"
)

// ParseFeedbackMode accepts "immediate" or "deferred"; empty means immediate.
func ParseFeedbackMode(s string) (FeedbackMode, error) {
	switch FeedbackMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", FeedbackImmediate:
		return FeedbackImmediate, nil
	case FeedbackDeferred:
		return FeedbackDeferred, nil
	default:
		return "", fmt.Errorf("unknown feedback mode %q", s)
	}
}

// SessionConfig holds the options chosen on the setup screen.
type SessionConfig struct {
	MaxQuestions *int // nil = all eligible questions
	Feedback     FeedbackMode
}

// DefaultConfig returns a config with no question limit and immediate feedback.
func DefaultConfig() SessionConfig {
	return SessionConfig{
		MaxQuestions: nil,
		Feedback:     FeedbackImmediate,
	}
}

// ParseQuestionCount reads the question count selector: "all" (or empty)
// yields nil, anything else must be a positive integer.
func ParseQuestionCount(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidQuestionCount, s)
	}
	return &n, nil
}
