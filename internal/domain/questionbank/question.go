package questionbank

import "errors"

var (
	ErrMissingID         = errors.New("question id cannot be empty")
	ErrTooFewOptions     = errors.New("question needs at least two options")
	ErrCorrectOutOfRange = errors.New("correct answer index out of range")
	ErrDuplicateQuestion = errors.New("duplicate question id")
)

// Question is a single multiple-choice item. It is never mutated once
// the bank is loaded.
type Question struct {
	ID                 string   `json:"id"`
	Topic              string   `json:"topic"`
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
	Explanation        string   `json:"explanation,omitempty"`
}

// Validate checks the question against the bank's data model.
func (q Question) Validate() error {
	if q.ID == "" {
		return ErrMissingID
	}
	if len(q.Options) < 2 {
		return ErrTooFewOptions
	}
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		return ErrCorrectOutOfRange
	}
	return nil
}

// IsCorrect reports whether the chosen option is the right one.
func (q Question) IsCorrect(optionIndex int) bool {
	return optionIndex == q.CorrectAnswerIndex
}

// HasOption reports whether optionIndex addresses one of the options.
func (q Question) HasOption(optionIndex int) bool {
	return optionIndex >= 0 && optionIndex < len(q.Options)
}
