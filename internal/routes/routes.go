package routes

const (
	// Health
	Health = "/health"

	// Sites
	Sites    = "/api/sites"
	SiteByID = "/api/sites/{id}"

	// Buildings
	Buildings    = "/api/buildings"
	BuildingByID = "/api/buildings/{id}"

	// Levels
	Levels     = "/api/levels"
	LevelsBulk = "/api/levels/bulk"
	LevelByID  = "/api/levels/{id}"
)

// Query parameters
const (
	QuerySiteID     = "siteId"
	QueryBuildingID = "buildingId"
)
