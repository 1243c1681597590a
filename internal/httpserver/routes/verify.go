package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/swingscene/radar/internal/httpserver/deps"
	"github.com/swingscene/radar/internal/httpserver/handlers"
	"github.com/swingscene/radar/internal/httpserver/mw"
)

func init() { Register(registerVerify) }

func registerVerify(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Post("/communities/{username}/verify", handlers.VerifyToggle(d))
}
