package questionbank

import (
	"fmt"
	"slices"
)

// QuestionBank is the loaded set of questions for the lifetime of the
// process. Order is the canonical order of the source file.
type QuestionBank struct {
	questions []Question
	byID      map[string]int
}

// Rejected describes a question that was left out of the bank.
type Rejected struct {
	Position int
	ID       string
	Err      error
}

func New() *QuestionBank {
	return &QuestionBank{
		questions: []Question{},
		byID:      make(map[string]int),
	}
}

// FromQuestions builds a bank from decoded questions, skipping the ones
// that do not validate. The rest keep their relative order.
func FromQuestions(questions []Question) (*QuestionBank, []Rejected) {
	bank := New()
	var rejected []Rejected
	for i, q := range questions {
		if err := bank.add(q); err != nil {
			rejected = append(rejected, Rejected{Position: i, ID: q.ID, Err: err})
		}
	}
	return bank, rejected
}

func (qb *QuestionBank) add(q Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if _, exists := qb.byID[q.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateQuestion, q.ID)
	}
	q.Options = slices.Clone(q.Options)
	qb.byID[q.ID] = len(qb.questions)
	qb.questions = append(qb.questions, q)
	return nil
}

// Questions returns the questions in bank order. The returned slice is a
// copy; the bank itself stays unchanged.
func (qb *QuestionBank) Questions() []Question {
	return slices.Clone(qb.questions)
}

func (qb *QuestionBank) Len() int {
	return len(qb.questions)
}

// Get looks a question up by id.
func (qb *QuestionBank) Get(id string) (Question, bool) {
	i, ok := qb.byID[id]
	if !ok {
		return Question{}, false
	}
	return qb.questions[i], true
}

// Topics returns the distinct topics in order of first appearance.
func (qb *QuestionBank) Topics() []string {
	seen := make(map[string]bool)
	topics := []string{}
	for _, q := range qb.questions {
		if seen[q.Topic] {
			continue
		}
		seen[q.Topic] = true
		topics = append(topics, q.Topic)
	}
	return topics
}
