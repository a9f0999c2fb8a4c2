package store

import (
	"encoding/json"

	practicesession "github.com/practice-drill/backend/internal/domain/practice_session"
	"github.com/practice-drill/backend/internal/domain/questionbank"
)

type storedAnswer struct {
	UserAnswerIndex int  `json:"user_answer_index"`
	IsCorrect       bool `json:"is_correct"`
	Answered        bool `json:"answered"`
}

type storedSession struct {
	ID           string                  `json:"id"`
	Questions    []questionbank.Question `json:"questions"`
	Feedback     string                  `json:"feedback"`
	CurrentIndex int                     `json:"current_index"`
	Answers      map[string]storedAnswer `json:"answers"`
	ReviewActive bool                    `json:"review_active"`
	Completed    bool                    `json:"completed"`
}

func encodeSession(s practicesession.PracticeSession) ([]byte, error) {
	answers := make(map[string]storedAnswer, len(s.Answers))
	for qid, a := range s.Answers {
		answers[qid] = storedAnswer{
			UserAnswerIndex: a.UserAnswerIndex,
			IsCorrect:       a.IsCorrect,
			Answered:        a.Answered,
		}
	}
	return json.Marshal(storedSession{
		ID:           s.ID,
		Questions:    s.Questions,
		Feedback:     string(s.Feedback),
		CurrentIndex: s.CurrentIndex,
		Answers:      answers,
		ReviewActive: s.ReviewActive,
		Completed:    s.Completed,
	})
}

func decodeSession(data []byte) (practicesession.PracticeSession, error) {
	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return practicesession.PracticeSession{}, err
	}

	answers := make(map[string]practicesession.SessionAnswer, len(stored.Answers))
	for qid, a := range stored.Answers {
		answers[qid] = practicesession.SessionAnswer{
			UserAnswerIndex: a.UserAnswerIndex,
			IsCorrect:       a.IsCorrect,
			Answered:        a.Answered,
		}
	}
	return practicesession.PracticeSession{
		ID:           stored.ID,
		Questions:    stored.Questions,
		Feedback:     practicesession.FeedbackMode(stored.Feedback),
		CurrentIndex: stored.CurrentIndex,
		Answers:      answers,
		ReviewActive: stored.ReviewActive,
		Completed:    stored.Completed,
	}, nil
}
