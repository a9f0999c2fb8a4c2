package performance

import "github.com/practice-drill/backend/internal/domain/questionbank"

// Breakdown aggregates the latest outcome of every question in a group.
// Percentages are relative to TotalQuestions, not to attempts.
type Breakdown struct {
	Topic          string
	TotalQuestions int
	Attempted      int
	Correct        int // last attempt correct
	Incorrect      int // last attempt wrong
	Unanswered     int
}

func (b Breakdown) CorrectPct() float64 {
	return pct(b.Correct, b.TotalQuestions, 0)
}

func (b Breakdown) IncorrectPct() float64 {
	return pct(b.Incorrect, b.TotalQuestions, 0)
}

// UnansweredPct is 100 for an empty group so an empty bar reads as
// entirely unanswered.
func (b Breakdown) UnansweredPct() float64 {
	return pct(b.Unanswered, b.TotalQuestions, 100)
}

func pct(n, total int, empty float64) float64 {
	if total == 0 {
		return empty
	}
	return float64(n) / float64(total) * 100
}

// Summary holds the overall breakdown and one per topic, topics in
// order of first appearance in the bank.
type Summary struct {
	Overall Breakdown
	Topics  []Breakdown
}

// Summarize computes performance statistics for the bank. Records for
// questions that are not in the bank are ignored.
func Summarize(bank *questionbank.QuestionBank, m Map) Summary {
	var summary Summary
	byTopic := make(map[string]int)

	for _, q := range bank.Questions() {
		i, ok := byTopic[q.Topic]
		if !ok {
			i = len(summary.Topics)
			byTopic[q.Topic] = i
			summary.Topics = append(summary.Topics, Breakdown{Topic: q.Topic})
		}
		topic := &summary.Topics[i]

		topic.TotalQuestions++
		summary.Overall.TotalQuestions++

		rec, attempted := m[q.ID]
		switch {
		case !attempted:
			topic.Unanswered++
			summary.Overall.Unanswered++
		case rec.LastAnsweredCorrectly:
			topic.Attempted++
			topic.Correct++
			summary.Overall.Attempted++
			summary.Overall.Correct++
		default:
			topic.Attempted++
			topic.Incorrect++
			summary.Overall.Attempted++
			summary.Overall.Incorrect++
		}
	}

	return summary
}
