package models

import (
	"encoding/json"
	"time"
)

// Level represents one floor of a building together with its map payload.
type Level struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BuildingID  string          `json:"buildingId"`
	FloorNumber int             `json:"floorNumber"`
	MapData     json.RawMessage `json:"mapData"`
	Coordinates *Coordinates    `json:"coordinates"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (l *Level) GetID() string { return l.ID }

func (l *Level) Clone() *Level {
	out := *l
	out.Coordinates = l.Coordinates.Clone()
	if l.MapData != nil {
		out.MapData = append(json.RawMessage(nil), l.MapData...)
	}
	return &out
}
