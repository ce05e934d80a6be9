// internal/defs/towers.go
package defs

import "fmt"

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID         string               `json:"id" jsonschema:"pattern=^[A-Z0-9_]+$,minLength=1"`
	Name       string               `json:"name"`
	Cost       int                  `json:"cost" jsonschema:"minimum=0"`
	Range      float64              `json:"range" jsonschema:"description=Firing radius in pixels,minimum=0"`
	FireRate   float64              `json:"fire_rate" jsonschema:"description=Shots per second,minimum=0"`
	Projectile ProjectileDefinition `json:"projectile"`
	Visuals    Visuals              `json:"visuals"`
}

// ProjectileDefinition describes the bullet a tower fires.
type ProjectileDefinition struct {
	Speed  float64 `json:"speed" jsonschema:"description=Pixels per second,minimum=0"`
	Damage int     `json:"damage" jsonschema:"minimum=1"`
}

// Validate checks a projectile definition.
func (d ProjectileDefinition) Validate() error {
	if d.Speed <= 0 {
		return fmt.Errorf("%w: projectile speed %.2f must be positive", ErrInvalidDefinition, d.Speed)
	}
	if d.Damage <= 0 {
		return fmt.Errorf("%w: projectile damage %d must be positive", ErrInvalidDefinition, d.Damage)
	}
	return nil
}

// Validate checks a tower definition including its projectile.
func (d TowerDefinition) Validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("%w: tower without id", ErrInvalidDefinition)
	case d.Cost < 0:
		return fmt.Errorf("%w: tower %s: cost %d must not be negative", ErrInvalidDefinition, d.ID, d.Cost)
	case d.Range <= 0:
		return fmt.Errorf("%w: tower %s: range %.2f must be positive", ErrInvalidDefinition, d.ID, d.Range)
	case d.FireRate <= 0:
		return fmt.Errorf("%w: tower %s: fire rate %.2f must be positive", ErrInvalidDefinition, d.ID, d.FireRate)
	}
	if err := d.Projectile.Validate(); err != nil {
		return fmt.Errorf("tower %s: %w", d.ID, err)
	}
	return nil
}
