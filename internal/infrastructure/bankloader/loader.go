package bankloader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/practice-drill/backend/internal/domain/questionbank"
)

// maxBankSize bounds how much of a remote bank is read.
const maxBankSize = 32 << 20

// Loader retrieves the question bank from a file path or an http(s) URL.
type Loader struct {
	client *http.Client // reused across calls
	logger *slog.Logger
}

func New(logger *slog.Logger) *Loader {
	return &Loader{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Load fetches and decodes the bank. Any failure yields an empty bank;
// invalid questions are skipped and the rest are kept.
func (l *Loader) Load(ctx context.Context, source string) *questionbank.QuestionBank {
	data, err := l.fetch(ctx, source)
	if err != nil {
		l.logger.Warn("question bank unavailable, starting empty", "source", source, "error", err)
		return questionbank.New()
	}

	questions, err := Parse(data)
	if err != nil {
		l.logger.Warn("question bank is not a JSON array of questions, starting empty", "source", source, "error", err)
		return questionbank.New()
	}

	bank, rejected := questionbank.FromQuestions(questions)
	for _, r := range rejected {
		l.logger.Warn("skipping invalid question", "position", r.Position, "question_id", r.ID, "error", r.Err)
	}

	l.logger.Info("question bank loaded", "source", source, "questions", bank.Len(), "topics", len(bank.Topics()))
	return bank
}

// Parse decodes a JSON array of questions.
func Parse(data []byte) ([]questionbank.Question, error) {
	var questions []questionbank.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	if !isURL(source) {
		return os.ReadFile(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", source, resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBankSize))
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
