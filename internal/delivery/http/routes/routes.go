package routes

import (
	"career-compass/internal/delivery/http/handler"
	v1 "career-compass/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

// Deps re-exports the v1 dependency set; the container fills it once.
type Deps = v1.Deps

type Registry struct {
	health *handler.HealthHandler
	deps   Deps
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{health: handler.NewHealthHandler(), deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	if r.deps.WS != nil {
		app.Get("/ws", r.deps.WS.HandleWS)
	}

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}
