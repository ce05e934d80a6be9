// component/tower.go
package component

import "go-tower-siege/pkg/tilemap"

type Tower struct {
	DefID string            // ID из towers.json
	Coord tilemap.TileCoord // Клетка, на которой стоит башня
	Range float64           // Радиус стрельбы в пикселях
}
