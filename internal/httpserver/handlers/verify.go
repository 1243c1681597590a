package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swingscene/radar/internal/domain"
	"github.com/swingscene/radar/internal/httpserver/deps"
	"github.com/swingscene/radar/internal/logger"
	redisstore "github.com/swingscene/radar/internal/store/redis"
)

type verifyResponse struct {
	Username string `json:"username"`
	Verified bool   `json:"verified"`
	Known    bool   `json:"known"`
}

// VerifyToggle flips the verification flag for a username. The flag flip
// is always persisted, even for a username not present in the current
// dataset; Known reports whether a visible record was updated.
func VerifyToggle(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		username := chi.URLParam(r, "username")
		if username == "" {
			http.Error(w, "username is required", http.StatusBadRequest)
			return
		}

		flags, err := store.LoadVerified(ctx)
		if err != nil {
			d.Logger.Error("failed to load verification flags",
				logger.Error(err))
			http.Error(w, "verification store unavailable", http.StatusServiceUnavailable)
			return
		}

		_, next := domain.ToggleVerified(nil, flags, username)
		if err := store.SaveVerified(ctx, next); err != nil {
			d.Logger.Error("failed to save verification flags",
				logger.String("username", username),
				logger.Error(err))
			http.Error(w, "verification store unavailable", http.StatusServiceUnavailable)
			return
		}

		verified := next[username]
		known := d.Index.SetVerified(username, verified)

		d.Logger.Info("verification toggled",
			logger.String("username", username),
			logger.Bool("verified", verified),
			logger.Bool("known", known))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(verifyResponse{
			Username: username,
			Verified: verified,
			Known:    known,
		})
	}
}
