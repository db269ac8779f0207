package routes

import (
	"job-compass/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health          *handler.HealthHandler
	Recommendations *handler.RecommendationHandler
	Corpus          *handler.CorpusHandler
	Stats           *handler.StatsHandler
}

func Register(app *fiber.App, h Handlers) {
	if app == nil {
		return
	}

	if h.Health != nil {
		h.Health.RegisterRoutes(app)
	}

	v1 := app.Group("/api/v1")
	if h.Recommendations != nil {
		h.Recommendations.RegisterRoutes(v1)
	}
	if h.Corpus != nil {
		h.Corpus.RegisterRoutes(v1)
	}
	if h.Stats != nil {
		h.Stats.RegisterRoutes(v1)
	}
}
