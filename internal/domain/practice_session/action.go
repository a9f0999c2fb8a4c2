package practicesession

// Outcome carries the side effects of a transition for the caller to
// apply.
type Outcome struct {
	Recorded *RecordedAnswer // first submission of a question
	Score    *Score          // the session ended
}

// Action is a user input driving a session.
type Action interface {
	apply(s PracticeSession) (PracticeSession, Outcome, error)
}

// SubmitAnswer chooses an option for a question of the session.
type SubmitAnswer struct {
	QuestionID  string
	OptionIndex int
}

// SubmitCurrent chooses an option for the question currently shown.
type SubmitCurrent struct {
	OptionIndex int
}

// Jump moves to the question at Index.
type Jump struct {
	Index int
}

type (
	Advance     struct{}
	Retreat     struct{}
	Complete    struct{}
	EnterReview struct{}
)

func (a SubmitAnswer) apply(s PracticeSession) (PracticeSession, Outcome, error) {
	return s.SubmitAnswer(a.QuestionID, a.OptionIndex)
}

func (a SubmitCurrent) apply(s PracticeSession) (PracticeSession, Outcome, error) {
	return s.SubmitAnswer(s.Current().ID, a.OptionIndex)
}

func (a Jump) apply(s PracticeSession) (PracticeSession, Outcome, error) {
	return s.Jump(a.Index)
}

func (Advance) apply(s PracticeSession) (PracticeSession, Outcome, error) { return s.Advance() }

func (Retreat) apply(s PracticeSession) (PracticeSession, Outcome, error) { return s.Retreat() }

func (Complete) apply(s PracticeSession) (PracticeSession, Outcome, error) { return s.Complete() }

func (EnterReview) apply(s PracticeSession) (PracticeSession, Outcome, error) {
	return s.EnterReview()
}

// Reduce applies an action to a session and returns the next state. On
// error the returned state equals s.
func Reduce(s PracticeSession, a Action) (PracticeSession, Outcome, error) {
	return a.apply(s)
}
