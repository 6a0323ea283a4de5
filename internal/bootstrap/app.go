package bootstrap

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"ai-roadmap/internal/content"
	"ai-roadmap/internal/shared/config"
	"ai-roadmap/internal/shared/server"
	"ai-roadmap/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Page   content.Page
	Router *gin.Engine
}

// New loads page content and wires the router. Logging must already be initialized.
func New(cfg config.Config) (*App, error) {
	page, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("load page content: %w", err)
	}
	telemetry.Info("content.loaded", map[string]any{
		"sections": page.SectionCount(),
		"phases":   len(page.Phases),
	})

	return &App{
		Config: cfg,
		Page:   page,
		Router: server.NewRouter(cfg, page),
	}, nil
}

// Addr is the address the router listens on.
func (a *App) Addr() string {
	return server.Addr(a.Config.Port)
}
