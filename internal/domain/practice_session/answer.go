package practicesession

// SessionAnswer is the answer given to one question in this session.
type SessionAnswer struct {
	UserAnswerIndex int
	IsCorrect       bool
	Answered        bool
}

// RecordedAnswer asks the caller to write one attempt to the performance
// store. It is emitted only for the first submission of a question.
type RecordedAnswer struct {
	QuestionID string
	Correct    bool
}

// SubmitAnswer stores the chosen option for a question.
//
// The first submission creates the answer and emits a RecordedAnswer.
// Later submissions are ignored in immediate mode and overwrite the
// choice in deferred mode, without emitting anything.
func (s PracticeSession) SubmitAnswer(questionID string, optionIndex int) (PracticeSession, Outcome, error) {
	if s.ReviewActive {
		return s, Outcome{}, ErrReviewActive
	}
	if s.Completed {
		return s, Outcome{}, ErrSessionCompleted
	}

	q, ok := s.question(questionID)
	if !ok {
		return s, Outcome{}, ErrUnknownQuestion
	}
	if !q.HasOption(optionIndex) {
		return s, Outcome{}, ErrOptionOutOfRange
	}

	isCorrect := q.IsCorrect(optionIndex)

	if _, answered := s.Answer(questionID); answered {
		if s.Feedback == FeedbackImmediate {
			return s, Outcome{}, nil
		}
		next := s.clone()
		next.Answers[questionID] = SessionAnswer{
			UserAnswerIndex: optionIndex,
			IsCorrect:       isCorrect,
			Answered:        true,
		}
		return next, Outcome{}, nil
	}

	next := s.clone()
	next.Answers[questionID] = SessionAnswer{
		UserAnswerIndex: optionIndex,
		IsCorrect:       isCorrect,
		Answered:        true,
	}
	return next, Outcome{
		Recorded: &RecordedAnswer{QuestionID: questionID, Correct: isCorrect},
	}, nil
}

// FeedbackVisible reports whether correctness, the explanation and the
// correct option may be shown for a question.
func (s PracticeSession) FeedbackVisible(questionID string) bool {
	_, answered := s.Answer(questionID)
	if !answered {
		return false
	}
	return s.ReviewActive || s.Feedback == FeedbackImmediate
}

// InputsLocked reports whether the options of a question are read-only.
func (s PracticeSession) InputsLocked(questionID string) bool {
	if s.ReviewActive || s.Completed {
		return true
	}
	_, answered := s.Answer(questionID)
	return answered && s.Feedback == FeedbackImmediate
}
