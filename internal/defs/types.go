// internal/defs/types.go
package defs

import (
	"errors"
	"image/color"
)

// ErrInvalidDefinition is returned when a definition fails validation.
var ErrInvalidDefinition = errors.New("invalid definition")

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color        color.RGBA `json:"color" jsonschema:"description=RGBA fill color"`
	RadiusFactor float64    `json:"radius_factor" jsonschema:"description=Radius as a fraction of the tile size,minimum=0"`
	StrokeWidth  float64    `json:"stroke_width,omitempty"`
}
