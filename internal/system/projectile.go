// internal/system/projectile.go
package system

import (
	"fmt"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
	"go-tower-siege/internal/utils"
)

// ProjectileSystem запускает снаряды по прямой к фиксированной точке.
// Снаряд не перенацеливается: если цель ушла, он долетает до точки и исчезает.
// Долетевший снаряд ещё участвует в проверке попаданий этого тика и
// удаляется в Cleanup.
type ProjectileSystem struct {
	ecs             *entity.ECS
	motion          *MotionSystem
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, motion *MotionSystem, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		motion:          motion,
		eventDispatcher: eventDispatcher,
	}
}

// Launch создаёт снаряд в origin и отправляет его к target.
func (s *ProjectileSystem) Launch(owner types.EntityID, origin, target component.Position, def defs.ProjectileDefinition) (types.EntityID, error) {
	if err := def.Validate(); err != nil {
		return 0, fmt.Errorf("launch projectile: %w", err)
	}

	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{
		Position: origin,
		Angle:    utils.Bearing(origin.X, origin.Y, target.X, target.Y),
	}
	s.ecs.Projectiles[id] = &component.Projectile{
		OwnerID: owner,
		Origin:  origin,
		Target:  target,
		Speed:   def.Speed,
		Damage:  def.Damage,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
	}

	err := s.motion.MoveTo(id, target, def.Speed, func() {
		if !s.IsAlive(id) {
			return
		}
		s.ecs.Projectiles[id].Arrived = true
	})
	if err != nil {
		s.Destroy(id)
		return 0, fmt.Errorf("launch projectile: %w", err)
	}
	return id, nil
}

// Cleanup удаляет снаряды, долетевшие до цели без попадания.
func (s *ProjectileSystem) Cleanup() {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		if !s.ecs.Projectiles[id].Arrived {
			continue
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileExpired, Data: id})
		s.Destroy(id)
	}
}

// IsAlive — снаряд ещё летит.
func (s *ProjectileSystem) IsAlive(id types.EntityID) bool {
	_, ok := s.ecs.Projectiles[id]
	return ok
}

// Damage возвращает урон снаряда.
func (s *ProjectileSystem) Damage(id types.EntityID) (int, bool) {
	proj, ok := s.ecs.Projectiles[id]
	if !ok {
		return 0, false
	}
	return proj.Damage, true
}

// Destroy удаляет снаряд. Повторный вызов ничего не делает.
func (s *ProjectileSystem) Destroy(id types.EntityID) {
	if !s.IsAlive(id) {
		return
	}
	despawn(s.ecs, s.motion, id)
}
