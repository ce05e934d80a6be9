package app

import (
	"image/color"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/types"
	"go-tower-siege/pkg/tilemap"
)

// EnemyView — копия состояния врага для отрисовки.
type EnemyView struct {
	ID        types.EntityID
	Position  component.Position
	Angle     float64
	Health    int
	MaxHealth int
	Flashing  bool
	Color     color.RGBA
	Radius    float32
}

type ProjectileView struct {
	ID       types.EntityID
	Position component.Position
	Angle    float64
	Radius   float32
	Color    color.RGBA
}

type TowerView struct {
	ID        types.EntityID
	DefID     string
	Coord     tilemap.TileCoord
	Position  component.Position
	Angle     float64
	Range     float64
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}

// Snapshot — неизменяемый срез состояния игры для интерфейса.
type Snapshot struct {
	Enemies      []EnemyView
	Projectiles  []ProjectileView
	Towers       []TowerView
	Health       int
	Coins        int
	Speed        float64
	Paused       bool
	PausePending bool
	Wave         int
	TotalWaves   int
	Over         bool
	Won          bool
	Panel        component.BuildPanel
	Time         float64
}

// Snapshot копирует состояние. Сущности идут по возрастанию ID.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Health:       g.health,
		Coins:        g.coins,
		Speed:        g.speed,
		Paused:       g.paused,
		PausePending: g.Time.PausePending(),
		Wave:         g.WaveSystem.CurrentWave(),
		TotalWaves:   g.WaveSystem.TotalWaves(),
		Over:         g.over,
		Won:          g.won,
		Panel:        g.panel,
		Time:         g.Time.Now(),
	}

	for _, id := range entity.SortedIDs(g.ECS.Enemies) {
		tr, ok := g.ECS.Transforms[id]
		if !ok {
			continue
		}
		view := EnemyView{ID: id, Position: tr.Position, Angle: tr.Angle, Flashing: g.VisualEffectSystem.IsFlashing(id)}
		if h, ok := g.ECS.Healths[id]; ok {
			view.Health, view.MaxHealth = h.Value, h.Max
		}
		if r, ok := g.ECS.Renderables[id]; ok {
			view.Color, view.Radius = r.Color, r.Radius
		}
		s.Enemies = append(s.Enemies, view)
	}

	for _, id := range entity.SortedIDs(g.ECS.Projectiles) {
		tr, ok := g.ECS.Transforms[id]
		if !ok {
			continue
		}
		view := ProjectileView{ID: id, Position: tr.Position, Angle: tr.Angle}
		if r, ok := g.ECS.Renderables[id]; ok {
			view.Color, view.Radius = r.Color, r.Radius
		}
		s.Projectiles = append(s.Projectiles, view)
	}

	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		tower := g.ECS.Towers[id]
		view := TowerView{ID: id, DefID: tower.DefID, Coord: tower.Coord, Range: tower.Range}
		if tr, ok := g.ECS.Transforms[id]; ok {
			view.Position, view.Angle = tr.Position, tr.Angle
		}
		if r, ok := g.ECS.Renderables[id]; ok {
			view.Color, view.Radius, view.HasStroke = r.Color, r.Radius, r.HasStroke
		}
		s.Towers = append(s.Towers, view)
	}
	return s
}
