package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/swingscene/radar/internal/domain"
	"github.com/swingscene/radar/internal/httpserver/deps"
)

type suggestResponse struct {
	Suggestions []domain.Community `json:"suggestions"`
	Count       int                `json:"count"`
}

// Suggest serves autocomplete suggestions. An empty query yields an empty
// list, unlike the main listing where an empty query matches everything.
func Suggest(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		limit := d.SuggestLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n < limit {
				limit = n
			}
		}

		suggestions := domain.Suggest(d.Index.All(), query, limit)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(suggestResponse{
			Suggestions: suggestions,
			Count:       len(suggestions),
		})
	}
}
