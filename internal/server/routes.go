package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, deps Deps) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("PaintingGuessr API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(deps.Logger, deps.DB))

	r.Route("/api", func(r chi.Router) {
		r.Get("/daily", handleDaily(deps.Logger, deps.Sampler, deps.Now))
		r.Get("/daily/clock", handleDailyClock(deps.Now))
		r.Get("/daily/session", handleLoadDailySession(deps.Snapshots, deps.Now))
		r.Put("/daily/session", handleSaveDailySession(deps.Logger, deps.Snapshots, deps.Now))
		r.Get("/paintings", handlePaintings(deps.Logger, deps.Sampler))
		r.Post("/score", handleScore())
	})
}
