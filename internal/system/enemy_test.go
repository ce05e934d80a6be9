package system

import (
	"errors"
	"testing"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/event"
)

func TestEnemyAdvancesThroughEveryWaypoint(t *testing.T) {
	for n := 1; n <= 6; n++ {
		path := make(fakePath, n)
		for i := range path {
			path[i] = component.Position{X: float64(i * 50), Y: float64((i % 2) * 40)}
		}
		w := newTestWorld(path)
		id, err := w.enemies.Spawn(testEnemy(), path[0])
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		w.motion.Update(1000)

		if got := len(w.events[event.EnemyAdvanced]); got != n {
			t.Errorf("n=%d: expected %d advancing states, got %d", n, n, got)
		}
		if got := len(w.base.attacks); got != 1 {
			t.Errorf("n=%d: expected one attack, got %d", n, got)
		}
		if w.enemies.IsAlive(id) {
			t.Errorf("n=%d: expected enemy destroyed after attack", n)
		}
	}
}

func TestEnemyFollowsStraightPath(t *testing.T) {
	path := fakePath{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}
	w := newTestWorld(path)
	def := testEnemy()
	def.RotationSpeed = 1e12 // поворот практически мгновенный
	id, err := w.enemies.Spawn(def, path[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 4; i++ {
		w.motion.Update(0.25)
	}
	if p := w.ecs.Transforms[id].Position; p.X != 100 || p.Y != 0 {
		t.Errorf("expected (100,0) at t=1.0, got %+v", p)
	}

	for i := 0; i < 3; i++ {
		w.motion.Update(0.25)
	}
	if len(w.base.attacks) != 0 {
		t.Fatalf("expected no attack before t=2.0")
	}
	if p := w.ecs.Transforms[id].Position; !almostEqual(p.Y, 75) {
		t.Errorf("expected y=75 at t=1.75, got %f", p.Y)
	}

	w.motion.Update(0.25)
	if len(w.base.attacks) != 1 {
		t.Fatalf("expected one attack at t=2.0, got %d", len(w.base.attacks))
	}
	if got := w.base.attacks[0]; got.EnemyID != id || got.Damage != def.Damage {
		t.Errorf("expected attack {%d %d}, got %+v", id, def.Damage, got)
	}
	if _, ok := w.ecs.Transforms[id]; ok {
		t.Errorf("expected enemy removed after attack")
	}
}

func TestEnemyTurnsBeforeWalking(t *testing.T) {
	// Поворот на 90 градусов при 300 град/с добавляет 0.3 к пути.
	path := fakePath{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}
	w := newTestWorld(path)
	id, _ := w.enemies.Spawn(testEnemy(), path[0])

	w.motion.Update(1)
	w.motion.Update(1)
	if p := w.ecs.Transforms[id].Position; !almostEqual(p.Y, 70) {
		t.Errorf("expected y=70 at t=2.0, got %f", p.Y)
	}
	if a := w.ecs.Transforms[id].Angle; !almostEqual(a, -90) {
		t.Errorf("expected facing -90, got %f", a)
	}
	w.motion.Update(0.2)
	if len(w.base.attacks) != 0 {
		t.Fatalf("expected no attack at t=2.2")
	}
	w.motion.Update(0.1)
	if len(w.base.attacks) != 1 {
		t.Errorf("expected attack at t=2.3, got %d", len(w.base.attacks))
	}
}

func TestSpawnRejectsInvalidDefinition(t *testing.T) {
	w := newTestWorld(fakePath{{}})
	def := testEnemy()
	def.Speed = 0
	if _, err := w.enemies.Spawn(def, component.Position{}); !errors.Is(err, defs.ErrInvalidDefinition) {
		t.Errorf("expected ErrInvalidDefinition, got %v", err)
	}
	if len(w.ecs.Enemies) != 0 {
		t.Errorf("expected no entity for rejected definition")
	}
}

func TestDestroyedEnemyNeverAttacks(t *testing.T) {
	path := fakePath{{X: 0, Y: 0}, {X: 300, Y: 0}}
	w := newTestWorld(path)
	id, _ := w.enemies.Spawn(testEnemy(), path[0])

	w.motion.Update(0.5)
	if !w.enemies.TakeDamage(id, 10) {
		t.Fatalf("expected lethal hit")
	}
	w.motion.Update(100)

	if len(w.base.attacks) != 0 {
		t.Errorf("expected no attack from destroyed enemy, got %d", len(w.base.attacks))
	}
	if n := w.motion.Pending(id); n != 0 {
		t.Errorf("expected nothing scheduled for destroyed enemy, got %d", n)
	}
	if w.enemies.TakeDamage(id, 1) {
		t.Errorf("expected damage on destroyed enemy to be a no-op")
	}
	if got := len(w.events[event.EnemyKilled]); got != 1 {
		t.Errorf("expected one kill event, got %d", got)
	}
}

func TestNonLethalHitFlashes(t *testing.T) {
	path := fakePath{{X: 0, Y: 0}, {X: 300, Y: 0}}
	w := newTestWorld(path)
	id, _ := w.enemies.Spawn(testEnemy(), path[0])

	if w.enemies.TakeDamage(id, 2) {
		t.Fatalf("expected enemy to survive")
	}
	if w.ecs.Healths[id].Value != 3 {
		t.Errorf("expected health 3, got %d", w.ecs.Healths[id].Value)
	}
	if !w.effects.IsFlashing(id) {
		t.Errorf("expected damage flash")
	}
	w.motion.Update(0.1)
	if w.effects.IsFlashing(id) {
		t.Errorf("expected flash over after 0.1")
	}
	if !w.enemies.IsAlive(id) || !w.motion.IsMoving(id) {
		t.Errorf("expected enemy still advancing")
	}
}
