package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"

	"medrights-backend/internal/agencies"
	"medrights-backend/internal/directory"
	"medrights-backend/internal/services/health"
	"medrights-backend/internal/shared/config"
	"medrights-backend/internal/shared/server"
	"medrights-backend/internal/triage"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Directory       *directory.Directory
	TriageService   *triage.Service
	TriageHandler   *triage.Handler
	AgenciesHandler *agencies.Handler
	HealthService   *health.Service
}

// Build loads the agency directory, validates its invariants and wires
// services, handlers and routes. A directory configuration error here is
// fatal: no request is served against a broken directory.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	dir, err := buildDirectory(cfg)
	if err != nil {
		return nil, err
	}

	triageSvc := triage.NewService(dir)
	app := &App{
		Config:          cfg,
		Directory:       dir,
		TriageService:   triageSvc,
		TriageHandler:   triage.NewHandler(triageSvc),
		AgenciesHandler: agencies.NewHandler(dir),
		HealthService:   health.NewService(len(dir.Agencies())),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		TriageHandler:   app.TriageHandler,
		AgenciesHandler: app.AgenciesHandler,
		HealthService:   app.HealthService,
	})

	return app, nil
}

func buildDirectory(cfg config.Config) (*directory.Directory, error) {
	if strings.TrimSpace(cfg.DirectoryFile) != "" {
		return directory.LoadFile(cfg.DirectoryFile)
	}
	return directory.LoadDefault()
}
