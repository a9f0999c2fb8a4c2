package bankloader_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/practice-drill/backend/internal/infrastructure/bankloader"
)

const bankJSON = `[
	{"id": "q1", "topic": "Bones", "question": "Longest bone?", "options": ["Femur", "Tibia"], "correct_answer_index": 0, "explanation": "The femur."},
	{"id": "q2", "topic": "Muscles", "question": "Largest muscle?", "options": ["Gluteus maximus", "Deltoid", "Biceps"], "correct_answer_index": 0},
	{"id": "q3", "topic": "Bones", "question": "Broken", "options": ["Only one"], "correct_answer_index": 0},
	{"id": "q1", "topic": "Bones", "question": "Duplicate", "options": ["a", "b"], "correct_answer_index": 1}
]`

func newLoader() *bankloader.Loader {
	return bankloader.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(bankJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	bank := newLoader().Load(context.Background(), path)

	if bank.Len() != 2 {
		t.Fatalf("expected 2 valid questions, got %d", bank.Len())
	}
	q, ok := bank.Get("q1")
	if !ok {
		t.Fatal("expected q1 to be loaded")
	}
	if q.Question != "Longest bone?" {
		t.Errorf("expected the first q1 to win, got %q", q.Question)
	}
	if q.Explanation != "The femur." {
		t.Errorf("unexpected explanation %q", q.Explanation)
	}
}

func TestLoad_MissingFileYieldsEmptyBank(t *testing.T) {
	bank := newLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))

	if bank.Len() != 0 {
		t.Errorf("expected empty bank, got %d questions", bank.Len())
	}
}

func TestLoad_MalformedJSONYieldsEmptyBank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(`{"not": "an array"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	bank := newLoader().Load(context.Background(), path)

	if bank.Len() != 0 {
		t.Errorf("expected empty bank, got %d questions", bank.Len())
	}
}

func TestLoad_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, bankJSON)
	}))
	defer srv.Close()

	bank := newLoader().Load(context.Background(), srv.URL+"/questions.json")

	if bank.Len() != 2 {
		t.Errorf("expected 2 questions, got %d", bank.Len())
	}
	topics := bank.Topics()
	if len(topics) != 2 || topics[0] != "Bones" || topics[1] != "Muscles" {
		t.Errorf("unexpected topics %v", topics)
	}
}

func TestLoad_URLErrorStatusYieldsEmptyBank(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	bank := newLoader().Load(context.Background(), srv.URL)

	if bank.Len() != 0 {
		t.Errorf("expected empty bank, got %d questions", bank.Len())
	}
}
