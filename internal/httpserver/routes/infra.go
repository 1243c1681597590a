package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/swingscene/radar/internal/httpserver/deps"
	"github.com/swingscene/radar/internal/httpserver/handlers"
	"github.com/swingscene/radar/internal/httpserver/mw"
)

func init() { Register(registerInfra) }

func registerInfra(r chi.Router, d deps.Deps) {
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)).Get("/infra", handlers.Infra(d))
}
