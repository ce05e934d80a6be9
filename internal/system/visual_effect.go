// internal/system/visual_effect.go
package system

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/types"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
// Таймеры эффектов идут по времени симуляции через MotionSystem.
type VisualEffectSystem struct {
	ecs    *entity.ECS
	motion *MotionSystem
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, motion *MotionSystem) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, motion: motion}
}

// Flash включает вспышку урона на duration. Повторная вспышка продлевает эффект.
func (s *VisualEffectSystem) Flash(id types.EntityID, duration float64) {
	if _, alive := s.ecs.Transforms[id]; !alive {
		return
	}
	if prev, ok := s.ecs.DamageFlashes[id]; ok {
		s.motion.CancelTimer(prev.TimerID)
	}
	flash := &component.DamageFlash{Duration: duration}
	s.ecs.DamageFlashes[id] = flash
	flash.TimerID = s.motion.After(id, duration, func() {
		if current, ok := s.ecs.DamageFlashes[id]; ok && current == flash {
			delete(s.ecs.DamageFlashes, id)
		}
	})
}

// IsFlashing — отрисовывать ли сущность цветом урона.
func (s *VisualEffectSystem) IsFlashing(id types.EntityID) bool {
	_, ok := s.ecs.DamageFlashes[id]
	return ok
}
