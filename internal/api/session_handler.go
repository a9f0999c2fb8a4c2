package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	practicesession "github.com/practice-drill/backend/internal/domain/practice_session"
)

// ── Request / Response types ────────────────────────────────────────────────

// QuestionCount accepts "all", a numeric string or a JSON number.
type QuestionCount string

func (c *QuestionCount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = QuestionCount(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New(`question_count must be "all" or a positive integer`)
	}
	*c = QuestionCount(strconv.Itoa(n))
	return nil
}

type CreateSessionRequest struct {
	Topics            []string      `json:"topics"`
	IncludeAnswered   bool          `json:"include_answered"`
	OnlyAnsweredWrong bool          `json:"only_answered_wrong"`
	QuestionCount     QuestionCount `json:"question_count"`
	Feedback          string        `json:"feedback"` // "immediate" (default) or "deferred"

	config practicesession.SessionConfig
}

func (r *CreateSessionRequest) Validate() error {
	maxQuestions, err := practicesession.ParseQuestionCount(string(r.QuestionCount))
	if err != nil {
		return err
	}
	feedback, err := practicesession.ParseFeedbackMode(r.Feedback)
	if err != nil {
		return err
	}
	r.config = practicesession.SessionConfig{
		MaxQuestions: maxQuestions,
		Feedback:     feedback,
	}
	return nil
}

func (r *CreateSessionRequest) criteria() practicesession.Criteria {
	return practicesession.Criteria{
		Topics:            r.Topics,
		IncludeAnswered:   r.IncludeAnswered,
		OnlyAnsweredWrong: r.OnlyAnsweredWrong,
	}
}

type SubmitAnswerRequest struct {
	QuestionID  string `json:"question_id,omitempty"` // defaults to the current question
	OptionIndex *int   `json:"option_index"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.OptionIndex == nil {
		return errors.New("please select an answer before submitting")
	}
	return nil
}

type JumpRequest struct {
	Index *int `json:"index"`
}

func (r *JumpRequest) Validate() error {
	if r.Index == nil {
		return errors.New("index is required")
	}
	return nil
}

type QuestionView struct {
	ID              string   `json:"id"`
	Number          int      `json:"number"`
	Topic           string   `json:"topic"`
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	Answered        bool     `json:"answered"`
	SelectedIndex   *int     `json:"selected_index,omitempty"`
	InputsLocked    bool     `json:"inputs_locked"`
	FeedbackVisible bool     `json:"feedback_visible"`

	// Only set while feedback is visible.
	IsCorrect          *bool  `json:"is_correct,omitempty"`
	CorrectAnswerIndex *int   `json:"correct_answer_index,omitempty"`
	Explanation        string `json:"explanation,omitempty"`
}

type NavigationView struct {
	PrevEnabled bool   `json:"prev_enabled"`
	PrevLabel   string `json:"prev_label"`
	NextEnabled bool   `json:"next_enabled"`
	NextLabel   string `json:"next_label"`
	EndsSession bool   `json:"ends_session"`
}

type SidebarItemView struct {
	Number   int  `json:"number"`
	Current  bool `json:"current"`
	Answered bool `json:"answered"`
}

type SummaryView struct {
	Correct         int     `json:"correct"`
	Total           int     `json:"total"`
	Score           float64 `json:"score"`
	Text            string  `json:"text"`
	ReviewAvailable bool    `json:"review_available"`
}

type SessionResponse struct {
	ID             string            `json:"id"`
	Feedback       string            `json:"feedback"`
	TotalQuestions int               `json:"total_questions"`
	CurrentIndex   int               `json:"current_index"`
	ReviewActive   bool              `json:"review_active"`
	Completed      bool              `json:"completed"`
	Question       QuestionView      `json:"question"`
	Navigation     NavigationView    `json:"navigation"`
	Sidebar        []SidebarItemView `json:"sidebar"`
	Summary        *SummaryView      `json:"summary,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /sessions
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.practice.StartSession(r.Context(), req.criteria(), req.config)
	if h.handleError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusCreated, toSessionResponse(session))
}

// GET /sessions/{sessionID}
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.practice.GetSession(r.Context(), r.PathValue("sessionID"))
	if h.handleError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(session))
}

// DELETE /sessions/{sessionID}
func (h *Handler) abandonSession(w http.ResponseWriter, r *http.Request) {
	if h.handleError(w, h.practice.AbandonSession(r.Context(), r.PathValue("sessionID")), "session") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /sessions/{sessionID}/answers
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if req.QuestionID == "" {
		h.apply(w, r, practicesession.SubmitCurrent{OptionIndex: *req.OptionIndex})
		return
	}

	h.apply(w, r, practicesession.SubmitAnswer{
		QuestionID:  req.QuestionID,
		OptionIndex: *req.OptionIndex,
	})
}

// POST /sessions/{sessionID}/next
func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, practicesession.Advance{})
}

// POST /sessions/{sessionID}/prev
func (h *Handler) previousQuestion(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, practicesession.Retreat{})
}

// POST /sessions/{sessionID}/jump
func (h *Handler) jumpToQuestion(w http.ResponseWriter, r *http.Request) {
	var req JumpRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.apply(w, r, practicesession.Jump{Index: *req.Index})
}

// POST /sessions/{sessionID}/complete
func (h *Handler) completeSession(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, practicesession.Complete{})
}

// POST /sessions/{sessionID}/review
func (h *Handler) startReview(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, practicesession.EnterReview{})
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request, action practicesession.Action) {
	session, _, err := h.practice.Apply(r.Context(), r.PathValue("sessionID"), action)
	if h.handleError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(session))
}

// ── Mapping ─────────────────────────────────────────────────────────────────

func toSessionResponse(s practicesession.PracticeSession) SessionResponse {
	nav := s.Navigation()

	sidebar := make([]SidebarItemView, 0, len(s.Questions))
	for _, item := range s.Sidebar() {
		sidebar = append(sidebar, SidebarItemView{
			Number:   item.Number,
			Current:  item.Current,
			Answered: item.Answered,
		})
	}

	resp := SessionResponse{
		ID:             s.ID,
		Feedback:       string(s.Feedback),
		TotalQuestions: len(s.Questions),
		CurrentIndex:   s.CurrentIndex,
		ReviewActive:   s.ReviewActive,
		Completed:      s.Completed,
		Question:       toQuestionView(s),
		Navigation: NavigationView{
			PrevEnabled: nav.PrevEnabled,
			PrevLabel:   nav.PrevLabel,
			NextEnabled: nav.NextEnabled,
			NextLabel:   nav.NextLabel,
			EndsSession: nav.EndsSession,
		},
		Sidebar: sidebar,
	}

	if s.Completed {
		score := s.Score()
		resp.Summary = &SummaryView{
			Correct:         score.Correct,
			Total:           score.Total,
			Score:           score.Fraction(),
			Text:            fmt.Sprintf("%d out of %d", score.Correct, score.Total),
			ReviewAvailable: s.ReviewAvailable(),
		}
	}
	return resp
}

func toQuestionView(s practicesession.PracticeSession) QuestionView {
	q := s.Current()
	view := QuestionView{
		ID:              q.ID,
		Number:          s.CurrentIndex + 1,
		Topic:           q.Topic,
		Question:        q.Question,
		Options:         q.Options,
		InputsLocked:    s.InputsLocked(q.ID),
		FeedbackVisible: s.FeedbackVisible(q.ID),
	}

	if a, ok := s.Answer(q.ID); ok {
		selected := a.UserAnswerIndex
		view.Answered = true
		view.SelectedIndex = &selected

		if view.FeedbackVisible {
			isCorrect := a.IsCorrect
			correctIndex := q.CorrectAnswerIndex
			view.IsCorrect = &isCorrect
			view.CorrectAnswerIndex = &correctIndex
			view.Explanation = q.Explanation
		}
	}
	return view
}
