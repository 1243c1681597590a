package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/swingscene/radar/internal/domain"
	"github.com/swingscene/radar/internal/httpserver/deps"
	"github.com/swingscene/radar/internal/logger"
)

type communitiesResponse struct {
	Results []domain.Community `json:"results"`
	Showing int                `json:"showing"`
	Total   int                `json:"total"`
	Label   string             `json:"label"`
}

// Communities serves the filtered, sorted record list. Query params map
// 1:1 onto the filter state; absent enum params mean "all".
func Communities(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := domain.FilterState{
			Query:    q.Get("q"),
			Style:    valueOr(q.Get("style"), domain.FilterAll),
			Location: valueOr(q.Get("location"), domain.FilterAll),
			DateFrom: q.Get("from"),
			DateTo:   q.Get("to"),
			Type:     valueOr(q.Get("type"), domain.FilterAll),
		}

		all := d.Index.All()
		results := domain.GetFiltered(all, f)

		// Stale scraped data may still carry past events; keep them out of
		// responses. The results are snapshots, so this never touches the
		// index.
		today := d.TimeNow().Format("2006-01-02")
		for i := range results {
			results[i].Scraped.UpcomingEvents = domain.FutureEvents(results[i].Scraped.UpcomingEvents, today)
		}

		d.Logger.Debug("communities request",
			logger.String("query", f.Query),
			logger.String("type", f.Type),
			logger.Int("showing", len(results)))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(communitiesResponse{
			Results: results,
			Showing: len(results),
			// The denominator counts the full set against the type filter
			// alone, so "showing N of M festivals" stays honest.
			Total: domain.CountByType(all, f.Type),
			Label: domain.TypeLabel(f.Type),
		})
	}
}

func valueOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
