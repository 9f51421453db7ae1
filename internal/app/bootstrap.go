package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"career-bridge/internal/database/migration"
	"career-bridge/internal/delivery/http/middleware"
	"career-bridge/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap applies pending migrations and mounts the HTTP surface on a new
// fiber app. The returned cleanup releases the container's resources.
func Bootstrap(c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}

	if err := runMigrations(c); err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)

	registry := routes.NewRegistry(c.Config, c.DB, c.Cache, c.Logger)
	registry.Register(f)

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func runMigrations(c *Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	runner := migration.Runner{Dir: "migrations"}
	return runner.Run(ctx, c.DB.SQLDB())
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	app.Use(accessMw.Middleware())
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
