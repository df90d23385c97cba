package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"cv-match/internal/config"
	"cv-match/internal/delivery/http/handler"
	"cv-match/internal/delivery/http/middleware"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	// Access log must wrap the error normalizer so it records the
	// status the client actually receives on failed requests.
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	handler.NewHealthHandler(c.Config.App.AppName, c.Strategy.Name()).RegisterRoutes(f)

	v1 := f.Group("/api").Group("/v1")
	handler.NewMatchHandler(c.MatchUC).RegisterRoutes(v1)
	handler.NewCvAnalysisHandler(c.AnalysisUC).RegisterRoutes(v1)
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
