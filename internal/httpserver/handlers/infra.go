package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/swingscene/radar/internal/httpserver/deps"
)

type componentStatus struct {
	OK            bool   `json:"ok"`
	RecordsLoaded *int   `json:"records_loaded,omitempty"`
	LastReload    string `json:"last_reload,omitempty"`
	Mode          string `json:"mode,omitempty"`
	Impact        string `json:"impact,omitempty"`
	Error         string `json:"error,omitempty"`
}

type infraResponse struct {
	ServiceMode string                     `json:"service_mode"`
	Components  map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		recordsCount := d.Index.Count()
		lastReload := d.Index.LastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format("2006-01-02 15:04:05")
		}

		redisStatus := checkRedis(d)

		components := map[string]componentStatus{
			"dataset": {
				OK:            recordsCount > 0,
				RecordsLoaded: &recordsCount,
				LastReload:    lastReloadStr,
			},
			"redis": redisStatus,
			"pipeline": {
				OK:   true,
				Mode: "filter+sort+suggest",
			},
		}

		response := infraResponse{
			ServiceMode: determineServiceMode(components),
			Components:  components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func determineServiceMode(components map[string]componentStatus) string {
	// No records loaded = nothing to serve.
	if ds, exists := components["dataset"]; exists {
		if !ds.OK || (ds.RecordsLoaded != nil && *ds.RecordsLoaded == 0) {
			return "critical"
		}
	}

	// Redis down = directory still works, verification toggles do not.
	if rd, exists := components["redis"]; exists && !rd.OK {
		return "degraded"
	}

	return "ok"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "verification-disabled",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "verification-disabled",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "verification-enabled",
		Error:  "none",
	}
}
