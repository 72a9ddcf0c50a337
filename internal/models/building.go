package models

import (
	"time"

	"github.com/Zafert/pointr-challenge/internal/utils"
)

type Building struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	SiteID      string       `json:"siteId"`
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates"`
	Floors      int          `json:"floors"`
	// Levels is kept empty; level creation does not register here.
	Levels    []string  `json:"levels"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Building) GetID() string { return b.ID }

func (b *Building) Clone() *Building {
	out := *b
	out.Coordinates = b.Coordinates.Clone()
	out.Levels = utils.CloneSlice(b.Levels)
	return &out
}
