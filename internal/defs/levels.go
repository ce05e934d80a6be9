package defs

import (
	"fmt"

	"go-tower-siege/pkg/tilemap"
)

// LevelDefinition — уровень: сетка, путь врагов, места под башни и волны.
type LevelDefinition struct {
	ID          string              `json:"id" jsonschema:"pattern=^[A-Z0-9_]+$,minLength=1"`
	Name        string              `json:"name"`
	Cols        int                 `json:"cols" jsonschema:"minimum=1"`
	Rows        int                 `json:"rows" jsonschema:"minimum=1"`
	TileSize    float64             `json:"tile_size" jsonschema:"minimum=0"`
	StartHealth int                 `json:"start_health" jsonschema:"minimum=1"`
	StartCoins  int                 `json:"start_coins" jsonschema:"minimum=0"`
	Waypoints   []tilemap.Waypoint  `json:"waypoints" jsonschema:"minItems=1,description=Checkpoints named 1..n walked in increasing order"`
	Roads       []tilemap.TileCoord `json:"roads,omitempty" jsonschema:"description=Road tiles; traced between waypoints when omitted"`
	TowerSlots  []tilemap.TileCoord `json:"tower_slots"`
	Waves       []WaveDefinition    `json:"waves"`
}

// BuildMap строит карту уровня.
func (d LevelDefinition) BuildMap() (*tilemap.LevelMap, error) {
	lm, err := tilemap.NewLevelMap(d.Cols, d.Rows, d.TileSize, d.Waypoints, d.Roads, d.TowerSlots)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", d.ID, err)
	}
	return lm, nil
}

// Validate проверяет уровень и его волны.
func (d LevelDefinition) Validate(enemies map[string]EnemyDefinition) error {
	if d.ID == "" {
		return fmt.Errorf("%w: level without id", ErrInvalidDefinition)
	}
	if d.StartHealth <= 0 {
		return fmt.Errorf("%w: level %s: start health %d must be positive", ErrInvalidDefinition, d.ID, d.StartHealth)
	}
	if len(d.Waypoints) == 0 {
		return fmt.Errorf("%w: level %s has no waypoints", ErrInvalidDefinition, d.ID)
	}
	if _, err := d.BuildMap(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	for i, w := range d.Waves {
		if err := w.Validate(enemies); err != nil {
			return fmt.Errorf("level %s wave %d: %w", d.ID, i+1, err)
		}
	}
	return nil
}
