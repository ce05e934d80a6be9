// internal/system/tower.go
package system

import (
	"errors"
	"fmt"
	"math"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/interfaces"
	"go-tower-siege/internal/types"
	"go-tower-siege/pkg/tilemap"
)

var (
	// ErrSlotUnavailable — клетка не предназначена для башни.
	ErrSlotUnavailable = errors.New("tile is not a tower slot")
	// ErrSlotOccupied — на клетке уже стоит башня.
	ErrSlotOccupied = errors.New("tower slot is occupied")
)

// leadIterations — сколько раз уточняется точка упреждения.
const leadIterations = 3

// TowerSystem строит башни и стреляет ими по ближайшим врагам в радиусе.
type TowerSystem struct {
	ecs             *entity.ECS
	slots           interfaces.SlotMap
	motion          *MotionSystem
	enemies         *EnemySystem
	projectiles     *ProjectileSystem
	eventDispatcher *event.Dispatcher
}

func NewTowerSystem(ecs *entity.ECS, slots interfaces.SlotMap, motion *MotionSystem, enemies *EnemySystem,
	projectiles *ProjectileSystem, eventDispatcher *event.Dispatcher) *TowerSystem {
	return &TowerSystem{
		ecs:             ecs,
		slots:           slots,
		motion:          motion,
		enemies:         enemies,
		projectiles:     projectiles,
		eventDispatcher: eventDispatcher,
	}
}

// Build ставит башню на свободную клетку-слот. Монеты здесь не списываются.
func (s *TowerSystem) Build(def defs.TowerDefinition, coord tilemap.TileCoord) (types.EntityID, error) {
	if err := def.Validate(); err != nil {
		return 0, fmt.Errorf("build tower: %w", err)
	}
	if !s.slots.IsTowerSlot(coord) {
		return 0, fmt.Errorf("build tower at %v: %w", coord, ErrSlotUnavailable)
	}
	if s.FindTowerByCoord(coord) != 0 {
		return 0, fmt.Errorf("build tower at %v: %w", coord, ErrSlotOccupied)
	}

	x, y := s.slots.TileCoordToWorld(coord)
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Position: component.Position{X: x, Y: y}}
	s.ecs.Towers[id] = &component.Tower{DefID: def.ID, Coord: coord, Range: def.Range}
	s.ecs.Combats[id] = &component.Combat{
		FireRate:         def.FireRate,
		ProjectileSpeed:  def.Projectile.Speed,
		ProjectileDamage: def.Projectile.Damage,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(config.TileSize * def.Visuals.RadiusFactor),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: coord})
	return id, nil
}

// FindTowerByCoord возвращает башню на клетке или 0.
func (s *TowerSystem) FindTowerByCoord(coord tilemap.TileCoord) types.EntityID {
	for id, tower := range s.ecs.Towers {
		if tower.Coord == coord {
			return id
		}
	}
	return 0
}

// Update отсчитывает перезарядку и выпускает снаряды.
// Башня без цели остаётся заряженной и стреляет, как только цель появится.
func (s *TowerSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		combat, ok := s.ecs.Combats[id]
		if !ok {
			continue
		}
		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime
			if combat.FireCooldown > 0 {
				continue
			}
		}

		tr := s.ecs.Transforms[id]
		target := s.findTarget(tr.Position, s.ecs.Towers[id].Range)
		if target == 0 {
			combat.FireCooldown = 0
			continue
		}

		def := defs.ProjectileDefinition{Speed: combat.ProjectileSpeed, Damage: combat.ProjectileDamage}
		aim := s.leadTarget(tr.Position, target, combat.ProjectileSpeed)
		if _, err := s.projectiles.Launch(id, tr.Position, aim, def); err != nil {
			continue
		}
		tr.Angle = bearingTo(tr.Position, aim)
		combat.FireCooldown += 1 / combat.FireRate
	}
}

// findTarget — ближайший живой враг в радиусе; при равных расстояниях меньший ID.
func (s *TowerSystem) findTarget(from component.Position, radius float64) types.EntityID {
	var best types.EntityID
	bestDist := math.Inf(1)
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		if !s.enemies.IsAlive(id) {
			continue
		}
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		d := from.DistanceTo(tr.Position)
		if d <= radius && d < bestDist {
			best, bestDist = id, d
		}
	}
	return best
}

// leadTarget вычисляет точку встречи с врагом, идущим по текущему отрезку.
// Пока враг поворачивается, целимся в его текущую позицию.
func (s *TowerSystem) leadTarget(from component.Position, enemyID types.EntityID, speed float64) component.Position {
	pos := s.ecs.Transforms[enemyID].Position
	vx, vy, moving := s.motion.Velocity(enemyID)
	if !moving {
		return pos
	}
	aim := pos
	for i := 0; i < leadIterations; i++ {
		t := from.DistanceTo(aim) / speed
		aim = component.Position{X: pos.X + vx*t, Y: pos.Y + vy*t}
	}
	return aim
}
