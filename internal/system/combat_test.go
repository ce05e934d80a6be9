package system

import (
	"errors"
	"testing"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
)

func launchAt(t *testing.T, w *testWorld, origin component.Position, damage int) types.EntityID {
	t.Helper()
	id, err := w.projectiles.Launch(0, origin, component.Position{X: origin.X, Y: origin.Y + 500},
		defs.ProjectileDefinition{Speed: 1000, Damage: damage})
	if err != nil {
		t.Fatalf("launch: %v", err)
	}
	return id
}

func TestSimultaneousHitsAreSummed(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		path := fakePath{{X: 0, Y: 0}, {X: 1000, Y: 0}}
		w := newTestWorld(path)
		enemy, _ := w.enemies.Spawn(testEnemy(), path[0])
		p1 := launchAt(t, w, component.Position{}, 2)
		p2 := launchAt(t, w, component.Position{}, 4)

		hits := w.combat.DetectHits()
		if len(hits) != 2 {
			t.Fatalf("expected 2 hits, got %d", len(hits))
		}
		if reversed {
			hits[0], hits[1] = hits[1], hits[0]
		}
		w.combat.ApplyHits(hits)

		kills := w.events[event.EnemyKilled]
		if len(kills) != 1 {
			t.Fatalf("reversed=%v: expected exactly one kill, got %d", reversed, len(kills))
		}
		data := kills[0].Data.(event.EnemyKilledData)
		if data.EnemyID != enemy || data.Health != -1 {
			t.Errorf("reversed=%v: expected enemy %d at health -1, got %+v", reversed, enemy, data)
		}
		if w.projectiles.IsAlive(p1) || w.projectiles.IsAlive(p2) {
			t.Errorf("reversed=%v: expected both projectiles destroyed", reversed)
		}
	}
}

func TestProjectileHitsOnlyNearestEnemy(t *testing.T) {
	path := fakePath{{X: 0, Y: 0}, {X: 1000, Y: 0}}
	w := newTestWorld(path)
	far, _ := w.enemies.Spawn(testEnemy(), component.Position{X: 0})
	near, _ := w.enemies.Spawn(testEnemy(), component.Position{X: 10})
	w.ecs.Transforms[far].Position = component.Position{X: 0}
	w.ecs.Transforms[near].Position = component.Position{X: 10}

	launchAt(t, w, component.Position{X: 7}, 2)
	hits := w.combat.Update()

	if len(hits) != 1 || hits[0].EnemyID != near {
		t.Fatalf("expected a single hit on enemy %d, got %+v", near, hits)
	}
	if got := w.ecs.Healths[near].Value; got != 3 {
		t.Errorf("expected near enemy at 3, got %d", got)
	}
	if got := w.ecs.Healths[far].Value; got != 5 {
		t.Errorf("expected far enemy untouched, got %d", got)
	}
}

func TestProjectileMissesOutsideRadius(t *testing.T) {
	path := fakePath{{X: 0, Y: 0}, {X: 1000, Y: 0}}
	w := newTestWorld(path)
	w.enemies.Spawn(testEnemy(), path[0])
	proj := launchAt(t, w, component.Position{X: 200, Y: 200}, 2)

	if hits := w.combat.Update(); len(hits) != 0 {
		t.Errorf("expected no hits, got %+v", hits)
	}
	if !w.projectiles.IsAlive(proj) {
		t.Errorf("expected projectile still flying")
	}
}

func TestProjectileExpiresAtTarget(t *testing.T) {
	w := newTestWorld(fakePath{{}})
	id, err := w.projectiles.Launch(0, component.Position{}, component.Position{X: 100},
		defs.ProjectileDefinition{Speed: 1000, Damage: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a := w.ecs.Transforms[id].Angle; a != 0 {
		t.Errorf("expected heading 0, got %f", a)
	}

	w.motion.Update(0.05)
	w.projectiles.Cleanup()
	if !w.projectiles.IsAlive(id) {
		t.Fatalf("expected projectile in flight at half way")
	}

	w.motion.Update(0.05)
	if p := w.ecs.Transforms[id].Position; p.X != 100 {
		t.Errorf("expected projectile at target, got %+v", p)
	}
	w.projectiles.Cleanup()
	if w.projectiles.IsAlive(id) {
		t.Errorf("expected projectile destroyed on arrival")
	}
	if got := len(w.events[event.ProjectileExpired]); got != 1 {
		t.Errorf("expected one expiry event, got %d", got)
	}
}

func TestLaunchRejectsInvalidProjectile(t *testing.T) {
	w := newTestWorld(fakePath{{}})
	_, err := w.projectiles.Launch(0, component.Position{}, component.Position{X: 10},
		defs.ProjectileDefinition{Speed: 0, Damage: 2})
	if !errors.Is(err, defs.ErrInvalidDefinition) {
		t.Errorf("expected ErrInvalidDefinition, got %v", err)
	}
	if len(w.ecs.Projectiles) != 0 {
		t.Errorf("expected no projectile created")
	}
}
