// internal/system/utils.go
package system

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/types"
	"go-tower-siege/internal/utils"
)

// despawn снимает все отложенные движения и таймеры сущности и удаляет её
// компоненты. Порядок важен: после этого ни одно продолжение не сработает.
func despawn(ecs *entity.ECS, motion *MotionSystem, id types.EntityID) {
	motion.Cancel(id)
	ecs.RemoveEntity(id)
}

func bearingTo(from, to component.Position) float64 {
	return utils.Bearing(from.X, from.Y, to.X, to.Y)
}
