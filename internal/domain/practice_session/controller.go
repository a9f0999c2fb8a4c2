package practicesession

const (
	LabelNext             = "Next"
	LabelNextQuestion     = "Next Question"
	LabelPreviousQuestion = "Previous Question"
	LabelEndSession       = "End Session"
	reviewSuffix          = " (Review)"
)

// Navigation describes the state of the previous/next controls for the
// current question.
type Navigation struct {
	PrevEnabled bool
	PrevLabel   string
	NextEnabled bool
	NextLabel   string
	EndsSession bool // next reads "End Session"
}

// Navigation computes enablement and labels for the current position.
func (s PracticeSession) Navigation() Navigation {
	isLast := s.IsLast()
	nav := Navigation{
		PrevEnabled: s.CurrentIndex > 0,
		PrevLabel:   LabelPreviousQuestion,
	}

	if s.ReviewActive {
		nav.PrevLabel += reviewSuffix
		nav.NextLabel = LabelNextQuestion + reviewSuffix
		nav.NextEnabled = !isLast
		return nav
	}

	switch s.Feedback {
	case FeedbackDeferred:
		nav.NextEnabled = true
		nav.NextLabel = LabelNext
		if isLast {
			nav.NextLabel = LabelEndSession
			nav.EndsSession = true
		}
	default:
		_, answered := s.Answer(s.Current().ID)
		nav.NextEnabled = answered || isLast
		nav.NextLabel = LabelNextQuestion
		if isLast && answered {
			nav.NextLabel = LabelEndSession
			nav.EndsSession = true
		}
	}
	return nav
}

// Advance moves to the next question. From the last question it ends
// the session instead. In review mode it stops at the last question.
func (s PracticeSession) Advance() (PracticeSession, Outcome, error) {
	if s.ReviewActive {
		if s.IsLast() {
			return s, Outcome{}, nil
		}
		next := s.clone()
		next.CurrentIndex++
		return next, Outcome{}, nil
	}

	if !s.Navigation().NextEnabled {
		return s, Outcome{}, ErrAnswerRequired
	}
	if s.IsLast() {
		return s.Complete()
	}

	next := s.clone()
	next.CurrentIndex++
	return next, Outcome{}, nil
}

// Retreat moves to the previous question; it does nothing on the first.
func (s PracticeSession) Retreat() (PracticeSession, Outcome, error) {
	next := s.clone()
	if next.CurrentIndex > 0 {
		next.CurrentIndex--
	}
	return next, Outcome{}, nil
}

// Jump moves directly to any question of the session.
func (s PracticeSession) Jump(index int) (PracticeSession, Outcome, error) {
	if index < 0 || index >= len(s.Questions) {
		return s, Outcome{}, ErrIndexOutOfRange
	}
	next := s.clone()
	next.CurrentIndex = index
	return next, Outcome{}, nil
}

// Score is the final result of a session.
type Score struct {
	Correct int
	Total   int
}

// Fraction returns Correct/Total.
func (sc Score) Fraction() float64 {
	if sc.Total == 0 {
		return 0
	}
	return float64(sc.Correct) / float64(sc.Total)
}

// Score counts the correct answers stored so far.
func (s PracticeSession) Score() Score {
	correct := 0
	for _, a := range s.Answers {
		if a.IsCorrect {
			correct++
		}
	}
	return Score{Correct: correct, Total: len(s.Questions)}
}

// Complete ends the session and reports the score. Performance records
// are not touched here; they were written on each first submission.
func (s PracticeSession) Complete() (PracticeSession, Outcome, error) {
	next := s.clone()
	next.Completed = true
	score := next.Score()
	return next, Outcome{Score: &score}, nil
}

// ReviewAvailable reports whether EnterReview would succeed.
func (s PracticeSession) ReviewAvailable() bool {
	return s.Completed && s.AllAnswered()
}

// EnterReview switches to read-only review from the first question.
func (s PracticeSession) EnterReview() (PracticeSession, Outcome, error) {
	if !s.ReviewAvailable() {
		return s, Outcome{}, ErrSessionIncomplete
	}
	next := s.clone()
	next.ReviewActive = true
	next.CurrentIndex = 0
	return next, Outcome{}, nil
}

// SidebarItem is one entry of the question navigator.
type SidebarItem struct {
	Number   int
	Current  bool
	Answered bool
}

// Sidebar lists every question with its current/answered markers.
func (s PracticeSession) Sidebar() []SidebarItem {
	items := make([]SidebarItem, len(s.Questions))
	for i, q := range s.Questions {
		_, answered := s.Answer(q.ID)
		items[i] = SidebarItem{
			Number:   i + 1,
			Current:  i == s.CurrentIndex,
			Answered: answered,
		}
	}
	return items
}
