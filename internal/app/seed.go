package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Zafert/pointr-challenge/internal/dtos"
	"github.com/Zafert/pointr-challenge/internal/models"
	"github.com/Zafert/pointr-challenge/internal/utils"
)

// SeedDemoData creates a small site/building/level hierarchy for local use.
// It is a no-op when any site already exists.
func (a *App) SeedDemoData(ctx context.Context) error {
	if a.SiteRepo.Count(ctx) > 0 {
		utils.Logger.Debug("Sites already present; skipping demo seed.")
		return nil
	}

	site, err := a.SiteService.CreateSite(ctx, dtos.CreateSiteRequest{
		Name:        "Demo Campus",
		Description: "Sample site created at startup",
		Location:    "London, UK",
		Coordinates: &models.Coordinates{Latitude: 51.5074, Longitude: -0.1278},
	})
	if err != nil {
		return fmt.Errorf("seed site: %w", err)
	}

	building, err := a.BuildingService.CreateBuilding(ctx, dtos.CreateBuildingRequest{
		Name:    "Main Building",
		SiteID:  site.ID,
		Address: "1 Demo Street",
		Floors:  utils.Ptr(2),
	})
	if err != nil {
		return fmt.Errorf("seed building: %w", err)
	}

	levels, err := json.Marshal([]dtos.CreateLevelRequest{
		{Name: "Ground Floor", BuildingID: building.ID, FloorNumber: utils.Ptr(0)},
		{Name: "First Floor", BuildingID: building.ID, FloorNumber: utils.Ptr(1)},
	})
	if err != nil {
		return fmt.Errorf("seed levels: %w", err)
	}
	result, err := a.LevelService.ImportLevels(ctx, levels)
	if err != nil {
		return fmt.Errorf("seed levels: %w", err)
	}
	if result.HasErrors() {
		return fmt.Errorf("seed levels: %v", result.Errors)
	}

	utils.Logger.WithField("site_id", site.ID).Info("Seeded demo data")
	return nil
}
