package performance

import (
	"encoding/json"
	"slices"
	"time"
)

// Attempt is one entry of a record's history. Timestamp is in Unix
// milliseconds so the persisted blob stays compatible with existing data.
type Attempt struct {
	Timestamp         int64 `json:"timestamp"`
	AnsweredCorrectly bool  `json:"answered_correctly"`
}

// Time returns the attempt timestamp as a time.Time.
func (a Attempt) Time() time.Time {
	return time.UnixMilli(a.Timestamp)
}

// Record is the cumulative performance for a single question.
// Correct never exceeds Attempts and History is append-only.
type Record struct {
	Attempts              int       `json:"attempts"`
	Correct               int       `json:"correct"`
	LastAnsweredCorrectly bool      `json:"last_answered_correctly"`
	History               []Attempt `json:"history"`
}

// Map is the process-wide questionID → Record mapping.
type Map map[string]Record

// Record appends an attempt for the question, creating its record on the
// first answer, and returns the updated record.
func (m Map) Record(questionID string, correct bool, at time.Time) Record {
	rec := m[questionID]
	rec.Attempts++
	if correct {
		rec.Correct++
	}
	rec.LastAnsweredCorrectly = correct
	rec.History = append(slices.Clip(rec.History), Attempt{
		Timestamp:         at.UnixMilli(),
		AnsweredCorrectly: correct,
	})
	m[questionID] = rec
	return rec
}

// Has reports whether the question was ever attempted.
func (m Map) Has(questionID string) bool {
	_, ok := m[questionID]
	return ok
}

// LastWrong reports whether the question has a record whose latest
// attempt was incorrect.
func (m Map) LastWrong(questionID string) bool {
	rec, ok := m[questionID]
	return ok && !rec.LastAnsweredCorrectly
}

// WrongCount counts records whose latest attempt was incorrect.
func (m Map) WrongCount() int {
	n := 0
	for _, rec := range m {
		if !rec.LastAnsweredCorrectly {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for id, rec := range m {
		rec.History = slices.Clone(rec.History)
		out[id] = rec
	}
	return out
}

// Encode serializes the whole map. Each save is a full overwrite.
func (m Map) Encode() ([]byte, error) {
	if m == nil {
		m = Map{}
	}
	return json.Marshal(m)
}

// Decode parses a persisted blob. A JSON null decodes to an empty map.
func Decode(data []byte) (Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = Map{}
	}
	return m, nil
}
