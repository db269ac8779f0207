package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"job-compass/internal/config"
	"job-compass/internal/delivery/http/handler"
	"job-compass/internal/delivery/http/middleware"
	"job-compass/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, registers middleware and routes, and
// attempts an initial corpus load. A failed initial load is logged but not
// fatal: the server comes up and serves 503 on scoring endpoints until a
// refresh succeeds.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, c.Logger)
	routes.Register(f, routes.Handlers{
		Health:          handler.NewHealthHandler(c.DB),
		Recommendations: handler.NewRecommendationHandler(c.Recommendations),
		Corpus:          handler.NewCorpusHandler(c.Refresh),
		Stats:           handler.NewStatsHandler(c.Stats),
	})

	loadInitialCorpus(c)

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func loadInitialCorpus(c *Container) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := c.Refresh.Refresh(ctx); err != nil {
		c.Logger.Warn("initial corpus load failed, serving 503 until refresh", zap.Error(err))
	}
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
