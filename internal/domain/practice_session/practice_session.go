package practicesession

import (
	"maps"
	"math/rand"

	"github.com/practice-drill/backend/internal/domain/questionbank"
	"github.com/practice-drill/backend/internal/id"
)

// PracticeSession is the state of one run through a fixed list of
// questions. Operations never modify the receiver; they return the next
// state.
type PracticeSession struct {
	ID           string
	Questions    []questionbank.Question
	Feedback     FeedbackMode
	CurrentIndex int
	Answers      map[string]SessionAnswer // keyed by question id
	ReviewActive bool
	Completed    bool
}

// New builds a session over all eligible questions with immediate feedback.
func New(eligible []questionbank.Question) (PracticeSession, error) {
	return NewWithConfig(eligible, DefaultConfig(), nil)
}

// NewWithConfig shuffles the eligible questions uniformly and keeps at
// most config.MaxQuestions of them. rng may be nil to use the shared
// source.
func NewWithConfig(eligible []questionbank.Question, config SessionConfig, rng *rand.Rand) (PracticeSession, error) {
	if len(eligible) == 0 {
		return PracticeSession{}, ErrNoEligibleQuestions
	}
	if config.MaxQuestions != nil && *config.MaxQuestions <= 0 {
		return PracticeSession{}, ErrInvalidQuestionCount
	}

	feedback := config.Feedback
	if feedback == "" {
		feedback = FeedbackImmediate
	}

	questions := shuffleQuestions(eligible, rng)
	if config.MaxQuestions != nil && *config.MaxQuestions < len(questions) {
		questions = questions[:*config.MaxQuestions]
	}

	return PracticeSession{
		ID:           id.GenerateID(),
		Questions:    questions,
		Feedback:     feedback,
		CurrentIndex: 0,
		Answers:      make(map[string]SessionAnswer),
	}, nil
}

// shuffleQuestions returns a new slice with questions in random order.
// rand.Shuffle is a Fisher-Yates shuffle, so every permutation is equally
// likely.
func shuffleQuestions(questions []questionbank.Question, rng *rand.Rand) []questionbank.Question {
	shuffled := make([]questionbank.Question, len(questions))
	copy(shuffled, questions)

	swap := func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if rng != nil {
		rng.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}

	return shuffled
}

// clone copies the answers map so the returned state shares nothing
// mutable with s. Questions are never modified and stay shared.
func (s PracticeSession) clone() PracticeSession {
	s.Answers = maps.Clone(s.Answers)
	if s.Answers == nil {
		s.Answers = make(map[string]SessionAnswer)
	}
	return s
}

// Current returns the question at CurrentIndex.
func (s PracticeSession) Current() questionbank.Question {
	return s.Questions[s.CurrentIndex]
}

// IsLast reports whether the current question is the last one.
func (s PracticeSession) IsLast() bool {
	return s.CurrentIndex == len(s.Questions)-1
}

func (s PracticeSession) question(questionID string) (questionbank.Question, bool) {
	for _, q := range s.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return questionbank.Question{}, false
}

// Answer returns the stored answer for a question of this session.
func (s PracticeSession) Answer(questionID string) (SessionAnswer, bool) {
	a, ok := s.Answers[questionID]
	return a, ok && a.Answered
}

// AllAnswered reports whether every question has a stored answer.
func (s PracticeSession) AllAnswered() bool {
	for _, q := range s.Questions {
		if _, ok := s.Answer(q.ID); !ok {
			return false
		}
	}
	return true
}
