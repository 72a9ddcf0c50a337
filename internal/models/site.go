package models

import (
	"time"

	"github.com/Zafert/pointr-challenge/internal/utils"
)

type Site struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates"`
	// Buildings is kept empty; building creation does not register here.
	Buildings []string  `json:"buildings"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Site) GetID() string { return s.ID }

func (s *Site) Clone() *Site {
	out := *s
	out.Coordinates = s.Coordinates.Clone()
	out.Buildings = utils.CloneSlice(s.Buildings)
	return &out
}

