package app

import (
	"github.com/Zafert/pointr-challenge/internal/config"
	"github.com/Zafert/pointr-challenge/internal/repositories"
	"github.com/Zafert/pointr-challenge/internal/services"
	"github.com/Zafert/pointr-challenge/internal/utils"
)

// App holds references to config, stores & services.
type App struct {
	Config *config.Config

	SiteRepo     repositories.SiteRepository
	BuildingRepo repositories.BuildingRepository
	LevelRepo    repositories.LevelRepository

	SiteService     services.SiteService
	BuildingService services.BuildingService
	LevelService    services.LevelService
}

// NewApp wires the in-memory stores into their services. State lives for
// the lifetime of the process.
func NewApp(cfg *config.Config) *App {
	utils.Logger.Infof("Initializing %s App", cfg.AppName)

	siteRepo := repositories.NewSiteRepository()
	buildingRepo := repositories.NewBuildingRepository()
	levelRepo := repositories.NewLevelRepository()

	return &App{
		Config:          cfg,
		SiteRepo:        siteRepo,
		BuildingRepo:    buildingRepo,
		LevelRepo:       levelRepo,
		SiteService:     services.NewSiteService(siteRepo),
		BuildingService: services.NewBuildingService(buildingRepo),
		LevelService:    services.NewLevelService(levelRepo),
	}
}

// Close is a no-op here but included for consistency.
func (a *App) Close() {
	utils.Logger.Infof("%s app shutting down.", a.Config.AppName)
}
