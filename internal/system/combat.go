package system

import (
	"math"

	"go-tower-siege/internal/config"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/types"
)

// Hit — попадание снаряда во врага.
type Hit struct {
	ProjectileID types.EntityID
	EnemyID      types.EntityID
	Damage       int
}

// CombatSystem находит пересечения снарядов с врагами и применяет урон.
type CombatSystem struct {
	ecs         *entity.ECS
	projectiles *ProjectileSystem
	enemies     *EnemySystem
	hitRadius   float64
}

func NewCombatSystem(ecs *entity.ECS, projectiles *ProjectileSystem, enemies *EnemySystem) *CombatSystem {
	return &CombatSystem{
		ecs:         ecs,
		projectiles: projectiles,
		enemies:     enemies,
		hitRadius:   config.EnemyRadius + config.ProjectileRadius,
	}
}

// Update собирает все попадания текущего тика и применяет их.
func (s *CombatSystem) Update() []Hit {
	hits := s.DetectHits()
	s.ApplyHits(hits)
	return hits
}

// DetectHits ищет для каждого живого снаряда ближайшего живого врага в радиусе
// попадания. Снаряд попадает не более чем в одного врага; при равных
// расстояниях выбирается меньший ID.
func (s *CombatSystem) DetectHits() []Hit {
	var hits []Hit
	enemyIDs := entity.SortedIDs(s.ecs.Enemies)

	for _, projID := range entity.SortedIDs(s.ecs.Projectiles) {
		projTr, ok := s.ecs.Transforms[projID]
		if !ok {
			continue
		}
		damage, _ := s.projectiles.Damage(projID)

		var target types.EntityID
		best := math.Inf(1)
		for _, enemyID := range enemyIDs {
			if !s.enemies.IsAlive(enemyID) {
				continue
			}
			enemyTr, ok := s.ecs.Transforms[enemyID]
			if !ok {
				continue
			}
			dist := projTr.Position.DistanceTo(enemyTr.Position)
			if dist <= s.hitRadius && dist < best {
				best = dist
				target = enemyID
			}
		}
		if target != 0 {
			hits = append(hits, Hit{ProjectileID: projID, EnemyID: target, Damage: damage})
		}
	}
	return hits
}

// ApplyHits уничтожает попавшие снаряды и наносит урон. Урон суммируется
// по врагу до применения, поэтому порядок hits не влияет на результат.
func (s *CombatSystem) ApplyHits(hits []Hit) {
	total := make(map[types.EntityID]int)
	for _, hit := range hits {
		if !s.projectiles.IsAlive(hit.ProjectileID) {
			continue
		}
		s.projectiles.Destroy(hit.ProjectileID)
		total[hit.EnemyID] += hit.Damage
	}
	for _, enemyID := range entity.SortedIDs(total) {
		s.enemies.TakeDamage(enemyID, total[enemyID])
	}
}
