package budget

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/tandembudget/tandem/internal/period"
)

// Handler handles HTTP requests for budget summaries
type Handler struct {
	defaultTimezone string
	logger          *slog.Logger
}

// NewHandler creates a new budget handler
func NewHandler(defaultTimezone string, logger *slog.Logger) *Handler {
	return &Handler{
		defaultTimezone: defaultTimezone,
		logger:          logger,
	}
}

// Summarize handles POST /api/budget/summary
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var snap Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		h.logger.Error("failed to decode request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if snap.Timezone == "" {
		snap.Timezone = h.defaultTimezone
	}

	summary, err := Summarize(&snap)
	if err != nil {
		h.logger.Error("failed to compute summary", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// periodResponse is the payload for GET /api/budget/period
type periodResponse struct {
	Period   period.Range `json:"period"`
	MonthKey string       `json:"month_key"`
	Next     time.Time    `json:"next"`
	Previous time.Time    `json:"previous"`
}

// GetPeriod handles GET /api/budget/period?date=...&period_type=...&timezone=...
func (h *Handler) GetPeriod(w http.ResponseWriter, r *http.Request) {
	ref := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := parseDateParam(raw)
		if err != nil {
			http.Error(w, "invalid date (use YYYY-MM-DD or RFC3339)", http.StatusBadRequest)
			return
		}
		ref = parsed
	}

	pt := period.Type(r.URL.Query().Get("period_type"))
	if pt == "" {
		pt = period.TypeMonthly
	}
	if err := pt.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tz := r.URL.Query().Get("timezone")
	if tz == "" {
		tz = h.defaultTimezone
	}

	resp := periodResponse{
		Period:   period.GetRange(ref, pt, tz),
		MonthKey: period.MonthKey(ref, tz),
		Next:     period.Next(ref, pt, tz),
		Previous: period.Previous(ref, pt, tz),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func parseDateParam(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
