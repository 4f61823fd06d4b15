package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
)

func TestCreateEntry(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantText   string
	}{
		{"Success: Numeric steps", `{"date":"2023-05-07","steps":6789}`, http.StatusCreated, ""},
		{"Success: Steps as string", `{"date":"2023-05-07","steps":"6789"}`, http.StatusCreated, ""},
		{"Fail: Non-numeric steps", `{"date":"2023-05-07","steps":"abc"}`, http.StatusBadRequest, "steps must be numeric"},
		{"Fail: Fractional steps", `{"date":"2023-05-07","steps":12.5}`, http.StatusBadRequest, "whole number"},
		{"Fail: Steps above the daily limit", `{"date":"2023-05-07","steps":5000000000000000000}`, http.StatusBadRequest, "must not exceed"},
		{"Fail: Zero steps", `{"date":"2023-05-07","steps":0}`, http.StatusBadRequest, "positive"},
		{"Fail: Missing steps", `{"date":"2023-05-07"}`, http.StatusBadRequest, "steps are required"},
		{"Fail: Missing date", `{"steps":100}`, http.StatusBadRequest, "date is required"},
		{"Fail: Bad date format", `{"date":"07/05/2023","steps":100}`, http.StatusBadRequest, "YYYY-MM-DD"},
		{"Fail: Future date", `{"date":"2023-05-08","steps":100}`, http.StatusBadRequest, "future date detected"},
		{"Fail: Malformed JSON", `{"date":`, http.StatusBadRequest, "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, serverOptions{})

			w := s.do(http.MethodPost, "/api/v1/entries", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantText != "" {
				assert.Contains(t, w.Body.String(), tt.wantText)
			}

			if tt.wantStatus == http.StatusCreated {
				d := decode[domain.Dashboard](t, w)
				assert.Equal(t, 6789, d.Stats.Today)
				assert.Equal(t, 5432, d.Stats.Yesterday)
				assert.Equal(t, 3, d.Stats.Streak)
				assert.Len(t, d.Entries, 3)
			} else {
				entries := decode[[]map[string]any](t, s.do(http.MethodGet, "/api/v1/entries", nil))
				assert.Len(t, entries, 2, "rejected input must not change the store")
			}
		})
	}
}

func TestCreateEntry_OverwritesDay(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	w := s.do(http.MethodPost, "/api/v1/entries", `{"date":"2023-05-06","steps":1111}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	d := decode[domain.Dashboard](t, w)
	assert.Equal(t, 1111, d.Stats.Yesterday)
	assert.Len(t, d.Entries, 2)
}

func TestListEntries(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	w := s.do(http.MethodGet, "/api/v1/entries", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"date":"2023-05-05","steps":8000},{"date":"2023-05-06","steps":5432}]`, w.Body.String())
}
