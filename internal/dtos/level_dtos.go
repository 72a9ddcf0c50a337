package dtos

import (
	"encoding/json"

	"github.com/Zafert/pointr-challenge/internal/models"
)

// CreateLevelRequest describes one level to import. FloorNumber is a pointer
// so that an explicit 0 is distinguishable from an absent field.
type CreateLevelRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description,omitempty"`
	BuildingID  string              `json:"buildingId" validate:"required"`
	FloorNumber *int                `json:"floorNumber" validate:"required"`
	MapData     json.RawMessage     `json:"mapData,omitempty"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
}

// BulkLevelRequest keeps items raw so each one is decoded, validated and
// reported independently.
type BulkLevelRequest struct {
	Levels json.RawMessage `json:"levels"`
}

type BulkLevelResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    []*models.Level `json:"data"`
	Count   int             `json:"count"`
}

// BulkLevelErrorResponse is returned when the bulk body is rejected outright
// or when at least one item failed. In the latter case ImportedCount items
// were still stored.
type BulkLevelErrorResponse struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	Errors        []string `json:"errors"`
	ImportedCount int      `json:"importedCount"`
	TotalCount    int      `json:"totalCount"`
}
