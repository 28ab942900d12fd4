package app

import (
	"fmt"
	"strings"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware().Middleware())

	registry := routes.NewRegistry(routes.Deps{
		JWT:       c.JWT,
		Employees: c.Employees,
		Matches:   c.Matches,
		Careers:   c.Careers,
		Plans:     c.Plans,
		Trending:  c.Trending,
		Positions: c.Positions,
		WS:        c.WSHandler,
	})
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg, nil)
	if err != nil {
		return nil, nil, err
	}

	go container.Hub.Run()

	app := New(container)
	return app, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
