package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/swingscene/radar/internal/httpserver/deps"
	"github.com/swingscene/radar/internal/httpserver/handlers"
)

func init() { Register(registerCommunities) }

func registerCommunities(r chi.Router, d deps.Deps) {
	r.Get("/communities", handlers.Communities(d))
}
