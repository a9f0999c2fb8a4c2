package practicesession_test

import (
	"fmt"

	practicesession "github.com/practice-drill/backend/internal/domain/practice_session"
	"github.com/practice-drill/backend/internal/domain/questionbank"
)

// makeQuestions returns n questions q1..qn, all with option 0 correct.
func makeQuestions(n int, topic string) []questionbank.Question {
	questions := make([]questionbank.Question, n)
	for i := range questions {
		questions[i] = questionbank.Question{
			ID:                 fmt.Sprintf("q%d", i+1),
			Topic:              topic,
			Question:           fmt.Sprintf("Question %d", i+1),
			Options:            []string{"right", "wrong", "also wrong"},
			CorrectAnswerIndex: 0,
			Explanation:        "Because.",
		}
	}
	return questions
}

// newSession builds a session with a known question order.
func newSession(feedback practicesession.FeedbackMode, n int) practicesession.PracticeSession {
	return practicesession.PracticeSession{
		ID:        "s1",
		Questions: makeQuestions(n, "Bones"),
		Feedback:  feedback,
		Answers:   make(map[string]practicesession.SessionAnswer),
	}
}

// answerAll answers every question in order; correct[i] picks the right
// option for question i.
func answerAll(s practicesession.PracticeSession, correct ...bool) practicesession.PracticeSession {
	for i, q := range s.Questions {
		option := 1
		if i < len(correct) && correct[i] {
			option = 0
		}
		s, _, _ = s.SubmitAnswer(q.ID, option)
	}
	return s
}

func sameOrder(a, b []questionbank.Question) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
