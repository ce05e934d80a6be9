// internal/defs/enemies.go
package defs

import "fmt"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID            string  `json:"id" jsonschema:"pattern=^[A-Z0-9_]+$,minLength=1"`
	Name          string  `json:"name"`
	Health        int     `json:"health" jsonschema:"minimum=1"`
	Speed         float64 `json:"speed" jsonschema:"description=Pixels per second,minimum=0"`
	RotationSpeed float64 `json:"rotation_speed" jsonschema:"description=Degrees per second,minimum=0"`
	Damage        int     `json:"damage" jsonschema:"description=Damage dealt to the base on arrival,minimum=1"`
	Reward        int     `json:"reward,omitempty" jsonschema:"description=Coins granted on kill,minimum=0"`
	Visuals       Visuals `json:"visuals"`
}

// Validate rejects non-positive speeds, health and damage.
func (d EnemyDefinition) Validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("%w: enemy without id", ErrInvalidDefinition)
	case d.Health <= 0:
		return fmt.Errorf("%w: enemy %s: health %d must be positive", ErrInvalidDefinition, d.ID, d.Health)
	case d.Speed <= 0:
		return fmt.Errorf("%w: enemy %s: speed %.2f must be positive", ErrInvalidDefinition, d.ID, d.Speed)
	case d.RotationSpeed <= 0:
		return fmt.Errorf("%w: enemy %s: rotation speed %.2f must be positive", ErrInvalidDefinition, d.ID, d.RotationSpeed)
	case d.Damage <= 0:
		return fmt.Errorf("%w: enemy %s: damage %d must be positive", ErrInvalidDefinition, d.ID, d.Damage)
	case d.Reward < 0:
		return fmt.Errorf("%w: enemy %s: reward %d must not be negative", ErrInvalidDefinition, d.ID, d.Reward)
	}
	return nil
}
