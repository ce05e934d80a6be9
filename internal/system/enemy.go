package system

import (
	"fmt"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/interfaces"
	"go-tower-siege/internal/types"
	"go-tower-siege/pkg/logger"
)

// EnemySystem ведёт врагов по точкам пути: поворот, затем движение,
// и так до последней точки, после которой враг атакует базу.
type EnemySystem struct {
	ecs             *entity.ECS
	motion          *MotionSystem
	effects         *VisualEffectSystem
	path            interfaces.PathProvider
	base            interfaces.BaseAttackHandler
	eventDispatcher *event.Dispatcher
}

func NewEnemySystem(ecs *entity.ECS, motion *MotionSystem, effects *VisualEffectSystem,
	path interfaces.PathProvider, base interfaces.BaseAttackHandler, eventDispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{
		ecs:             ecs,
		motion:          motion,
		effects:         effects,
		path:            path,
		base:            base,
		eventDispatcher: eventDispatcher,
	}
}

// Spawn создаёт врага в точке spawn и отправляет его к первой точке пути.
// Некорректное определение отклоняется до создания сущности.
func (s *EnemySystem) Spawn(def defs.EnemyDefinition, spawn component.Position) (types.EntityID, error) {
	if err := def.Validate(); err != nil {
		return 0, fmt.Errorf("spawn enemy: %w", err)
	}

	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Position: spawn}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:         def.ID,
		Speed:         def.Speed,
		RotationSpeed: def.RotationSpeed,
		Damage:        def.Damage,
		Reward:        def.Reward,
		State:         component.EnemyAdvancing,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(config.TileSize * def.Visuals.RadiusFactor),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})

	s.moveToNextWaypoint(id)
	return id, nil
}

// IsAlive — враг существует и ещё идёт по пути.
func (s *EnemySystem) IsAlive(id types.EntityID) bool {
	enemy, ok := s.ecs.Enemies[id]
	return ok && enemy.State == component.EnemyAdvancing
}

func (s *EnemySystem) moveToNextWaypoint(id types.EntityID) {
	if !s.IsAlive(id) {
		return
	}
	enemy := s.ecs.Enemies[id]
	enemy.WaypointIndex++

	x, y, found := s.path.Waypoint(enemy.WaypointIndex)
	if !found {
		s.attackBase(id, enemy)
		return
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyAdvanced,
		Data: event.EnemyAdvancedData{EnemyID: id, Waypoint: enemy.WaypointIndex},
	})

	target := component.Position{X: x, Y: y}
	err := s.motion.RotateTo(id, target, enemy.RotationSpeed, config.EnemyAngleOffset, func() {
		if !s.IsAlive(id) {
			return
		}
		err := s.motion.MoveTo(id, target, enemy.Speed, func() {
			s.moveToNextWaypoint(id)
		})
		if err != nil {
			logger.Log.WithError(err).WithField("enemy", id).Warn("Enemy cannot move")
		}
	})
	if err != nil {
		logger.Log.WithError(err).WithField("enemy", id).Warn("Enemy cannot rotate")
	}
}

// attackBase — путь закончился: одна атака по базе, затем враг исчезает.
func (s *EnemySystem) attackBase(id types.EntityID, enemy *component.Enemy) {
	enemy.State = component.EnemyAttacking
	attack := event.AttackEvent{EnemyID: id, Damage: enemy.Damage}
	s.base.OnAttack(attack)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: attack})
	despawn(s.ecs, s.motion, id)
}

// TakeDamage отнимает здоровье. При остатке > 0 враг мигает и идёт дальше,
// иначе погибает. Возвращает true, если этот удар убил врага.
func (s *EnemySystem) TakeDamage(id types.EntityID, damage int) bool {
	if !s.IsAlive(id) {
		return false
	}
	health, ok := s.ecs.Healths[id]
	if !ok {
		return false
	}

	health.Value -= damage
	if health.Value > 0 {
		s.effects.Flash(id, config.DamageFlashDuration)
		return false
	}

	enemy := s.ecs.Enemies[id]
	enemy.State = component.EnemyDead
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{EnemyID: id, Reward: enemy.Reward, Health: health.Value},
	})
	despawn(s.ecs, s.motion, id)
	return true
}
