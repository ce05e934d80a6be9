package component

import "go-tower-siege/pkg/tilemap"

// BuildPanel — состояние панели выбора башни.
type BuildPanel struct {
	Visible bool
	Coord   tilemap.TileCoord
}
