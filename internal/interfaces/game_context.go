// internal/interfaces/game_context.go
package interfaces

import (
	"go-tower-siege/internal/event"
	"go-tower-siege/pkg/tilemap"
)

// PathProvider — источник точек пути. ok == false означает конец пути.
type PathProvider interface {
	Waypoint(index int) (x, y float64, ok bool)
}

// BaseAttackHandler получает атаки врагов, дошедших до базы.
// Системы держат ссылку на единственного получателя, координатор игры.
type BaseAttackHandler interface {
	OnAttack(attack event.AttackEvent)
}

// SlotMap — клетки, на которых можно строить башни.
type SlotMap interface {
	IsTowerSlot(c tilemap.TileCoord) bool
	TileCoordToWorld(c tilemap.TileCoord) (x, y float64)
}
