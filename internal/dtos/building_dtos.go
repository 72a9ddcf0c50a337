package dtos

import "github.com/Zafert/pointr-challenge/internal/models"

type CreateBuildingRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description,omitempty"`
	SiteID      string              `json:"siteId" validate:"required"`
	Address     string              `json:"address,omitempty"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	Floors      *int                `json:"floors,omitempty"`
}
