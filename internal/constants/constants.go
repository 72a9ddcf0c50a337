package constants

import "time"

const (
	DefaultAppName    = "pointr-maps-api"
	ServiceTitle      = "Pointr Maps API"
	DefaultAppPort    = "3000"
	DefaultCORSOrigin = "*"
)

// HTTP server timeouts
const (
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	MaxRequestBodyBytes    = 10 << 20
)

// Entity defaults
const (
	DefaultBuildingFloors = 1
)

// Public messages
const (
	MsgHealthOK = "OK"

	MsgSiteCreated     = "Site created successfully"
	MsgSiteDeleted     = "Site deleted successfully"
	MsgSiteNotFound    = "Site not found"
	MsgSiteRequired    = "Name and location are required"
	MsgSitesListFailed = "Failed to retrieve sites"
	MsgSiteGetFailed   = "Failed to retrieve site"
	MsgSiteCreateFail  = "Failed to create site"
	MsgSiteDeleteFail  = "Failed to delete site"

	MsgBuildingCreated     = "Building created successfully"
	MsgBuildingDeleted     = "Building deleted successfully"
	MsgBuildingNotFound    = "Building not found"
	MsgBuildingRequired    = "Name and siteId are required"
	MsgBuildingsListFailed = "Failed to retrieve buildings"
	MsgBuildingGetFailed   = "Failed to retrieve building"
	MsgBuildingCreateFail  = "Failed to create building"
	MsgBuildingDeleteFail  = "Failed to delete building"

	MsgLevelImported     = "Level imported successfully"
	MsgLevelDeleted      = "Level deleted successfully"
	MsgLevelNotFound     = "Level not found"
	MsgLevelRequired     = "Name, buildingId, and floorNumber are required"
	MsgLevelsListFailed  = "Failed to retrieve levels"
	MsgLevelGetFailed    = "Failed to retrieve level"
	MsgLevelImportFailed = "Failed to import level"
	MsgLevelDeleteFail   = "Failed to delete level"

	MsgBulkEmpty          = "Levels array is required and must not be empty"
	MsgBulkPartialFailure = "Some levels failed to import"
	MsgBulkAllImported    = "All levels imported successfully"
	MsgBulkFailed         = "Failed to import levels"
	MsgBulkItemMissing    = "Missing required fields (name, buildingId, floorNumber)"
	MsgBulkItemInvalid    = "Invalid level object"

	MsgInvalidJSON = "Invalid JSON payload"

	MsgRouteNotFoundTitle = "Not Found"
	MsgInternalTitle      = "Internal Server Error"
	MsgInternalDetail     = "Something went wrong!"
)
