package practicesession

import (
	"github.com/practice-drill/backend/internal/domain/performance"
	"github.com/practice-drill/backend/internal/domain/questionbank"
)

// Criteria are the filter selections from the setup screen.
type Criteria struct {
	Topics            []string // empty = all topics
	IncludeAnswered   bool
	OnlyAnsweredWrong bool
}

// DefaultCriteria returns all topics with previously answered questions
// excluded.
func DefaultCriteria() Criteria {
	return Criteria{}
}

// Filter narrows the questions down to those eligible under c, keeping
// their order. The steps run in a fixed order: topics first, then
// OnlyAnsweredWrong which, when set, replaces the IncludeAnswered check.
func Filter(questions []questionbank.Question, perf performance.Map, c Criteria) []questionbank.Question {
	var topics map[string]bool
	if len(c.Topics) > 0 {
		topics = make(map[string]bool, len(c.Topics))
		for _, t := range c.Topics {
			topics[t] = true
		}
	}

	eligible := make([]questionbank.Question, 0, len(questions))
	for _, q := range questions {
		if topics != nil && !topics[q.Topic] {
			continue
		}
		switch {
		case c.OnlyAnsweredWrong:
			if !perf.LastWrong(q.ID) {
				continue
			}
		case !c.IncludeAnswered:
			if perf.Has(q.ID) {
				continue
			}
		}
		eligible = append(eligible, q)
	}
	return eligible
}

// Counts are the live counters shown next to the filter controls.
type Counts struct {
	Answered int // questions ever answered
	Wrong    int // questions answered wrong last time
	Eligible int // questions matching the current criteria
}

// CanStart reports whether a session may be started.
func (c Counts) CanStart() bool {
	return c.Eligible > 0
}

// Count recomputes the counters for the given criteria.
func Count(bank *questionbank.QuestionBank, perf performance.Map, c Criteria) Counts {
	return Counts{
		Answered: len(perf),
		Wrong:    perf.WrongCount(),
		Eligible: len(Filter(bank.Questions(), perf, c)),
	}
}
