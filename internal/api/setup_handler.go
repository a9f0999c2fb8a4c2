package api

import (
	"net/http"
	"strconv"

	"github.com/practice-drill/backend/internal/domain/performance"
	practicesession "github.com/practice-drill/backend/internal/domain/practice_session"
)

// ── Request / Response types ────────────────────────────────────────────────

type TopicsResponse struct {
	Topics []string `json:"topics"`
}

type FilterCountsResponse struct {
	Answered int  `json:"answered"`
	Wrong    int  `json:"wrong"`
	Eligible int  `json:"eligible"`
	CanStart bool `json:"can_start"`
}

type BreakdownResponse struct {
	Topic          string  `json:"topic,omitempty"`
	TotalQuestions int     `json:"total_questions"`
	Attempted      int     `json:"attempted"`
	Correct        int     `json:"correct"`
	Incorrect      int     `json:"incorrect"`
	Unanswered     int     `json:"unanswered"`
	CorrectPct     float64 `json:"correct_pct"`
	IncorrectPct   float64 `json:"incorrect_pct"`
	UnansweredPct  float64 `json:"unanswered_pct"`
}

type StatsResponse struct {
	Overall BreakdownResponse   `json:"overall"`
	Topics  []BreakdownResponse `json:"topics"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /topics
func (h *Handler) listTopics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, TopicsResponse{Topics: h.practice.Topics()})
}

// GET /filter/counts?topics=A&topics=B&include_answered=false&only_answered_wrong=false
func (h *Handler) filterCounts(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	counts := h.practice.Counts(criteria)
	respondJSON(w, http.StatusOK, FilterCountsResponse{
		Answered: counts.Answered,
		Wrong:    counts.Wrong,
		Eligible: counts.Eligible,
		CanStart: counts.CanStart(),
	})
}

// GET /stats
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	summary := h.practice.Stats()

	topics := make([]BreakdownResponse, len(summary.Topics))
	for i, b := range summary.Topics {
		topics[i] = toBreakdownResponse(b)
	}

	respondJSON(w, http.StatusOK, StatsResponse{
		Overall: toBreakdownResponse(summary.Overall),
		Topics:  topics,
	})
}

func toBreakdownResponse(b performance.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Topic:          b.Topic,
		TotalQuestions: b.TotalQuestions,
		Attempted:      b.Attempted,
		Correct:        b.Correct,
		Incorrect:      b.Incorrect,
		Unanswered:     b.Unanswered,
		CorrectPct:     b.CorrectPct(),
		IncorrectPct:   b.IncorrectPct(),
		UnansweredPct:  b.UnansweredPct(),
	}
}

func criteriaFromQuery(r *http.Request) (practicesession.Criteria, error) {
	q := r.URL.Query()
	criteria := practicesession.DefaultCriteria()
	criteria.Topics = q["topics"]

	var err error
	if criteria.IncludeAnswered, err = parseBoolParam(q.Get("include_answered")); err != nil {
		return criteria, err
	}
	if criteria.OnlyAnsweredWrong, err = parseBoolParam(q.Get("only_answered_wrong")); err != nil {
		return criteria, err
	}
	return criteria, nil
}

func parseBoolParam(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}
