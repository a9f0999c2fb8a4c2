package api

import (
	"net/http"
	"time"

	"github.com/practice-drill/backend/internal/domain/performance"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportData struct {
	Version     string          `json:"version"`
	ExportedAt  string          `json:"exported_at"`
	Performance performance.Map `json:"performance"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /performance/export
func (h *Handler) exportPerformance(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="performance.json"`)
	respondJSON(w, http.StatusOK, ExportData{
		Version:     "1.0",
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		Performance: h.practice.Performance(),
	})
}
