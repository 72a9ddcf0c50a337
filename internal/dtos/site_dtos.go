package dtos

import "github.com/Zafert/pointr-challenge/internal/models"

type CreateSiteRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description,omitempty"`
	Location    string              `json:"location" validate:"required"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
}
