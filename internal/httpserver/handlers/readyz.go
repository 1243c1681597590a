package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/swingscene/radar/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready   bool `json:"ready"`
	Records int  `json:"records"`
}

// Readyz reports readiness: the service is ready once the dataset has been
// loaded into the index.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records := d.Index.Count()
		ready := records > 0

		w.Header().Set("Content-Type", "application/json")
		if !ready {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}

		_ = json.NewEncoder(w).Encode(readyzResponse{
			Ready:   ready,
			Records: records,
		})
	}
}
