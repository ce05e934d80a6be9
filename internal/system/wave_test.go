package system

import (
	"testing"

	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/utils"
)

func newTestWaves(w *testWorld, path fakePath, waves []defs.WaveDefinition) *WaveSystem {
	enemyDefs := map[string]defs.EnemyDefinition{"ENEMY_TEST": testEnemy()}
	return NewWaveSystem(w.ecs, w.enemies, enemyDefs, waves, path[0], utils.NewPRNGService(7), w.dispatcher)
}

func TestWaveSpawnsOnSchedule(t *testing.T) {
	path := fakePath{{X: 0, Y: 0}, {X: 5000, Y: 0}}
	w := newTestWorld(path)
	waves := newTestWaves(w, path, []defs.WaveDefinition{{
		Count:         2,
		SpawnInterval: 1,
		StartDelay:    0.5,
		Enemies:       []defs.SpawnEntry{{EnemyID: "ENEMY_TEST", Weight: 1}},
	}})

	if waves.CurrentWave() != 1 {
		t.Fatalf("expected wave 1 started, got %d", waves.CurrentWave())
	}
	waves.Update(0.25)
	if len(w.ecs.Enemies) != 0 {
		t.Fatalf("expected no spawn before start delay")
	}
	waves.Update(0.25)
	if len(w.ecs.Enemies) != 1 {
		t.Fatalf("expected first spawn at 0.5, got %d", len(w.ecs.Enemies))
	}
	waves.Update(0.5)
	if len(w.ecs.Enemies) != 1 {
		t.Fatalf("expected interval between spawns")
	}
	waves.Update(0.5)
	if len(w.ecs.Enemies) != 2 {
		t.Fatalf("expected second spawn at 1.5, got %d", len(w.ecs.Enemies))
	}
	if waves.ActiveEnemies() != 2 {
		t.Errorf("expected 2 active enemies, got %d", waves.ActiveEnemies())
	}
}

func TestWaveEndsWhenEnemiesAreGone(t *testing.T) {
	path := fakePath{{X: 0, Y: 0}, {X: 100, Y: 0}}
	w := newTestWorld(path)
	wave := defs.WaveDefinition{Count: 2, Enemies: []defs.SpawnEntry{{EnemyID: "ENEMY_TEST", Weight: 1}}}
	waves := newTestWaves(w, path, []defs.WaveDefinition{wave, wave})

	waves.Update(0)
	ids := entity.SortedIDs(w.ecs.Enemies)
	if len(ids) != 2 {
		t.Fatalf("expected whole wave spawned with zero interval, got %d", len(ids))
	}
	w.enemies.TakeDamage(ids[0], 100)
	waves.Update(0)
	if len(w.events[event.WaveEnded]) != 0 {
		t.Fatalf("expected wave to continue while an enemy is alive")
	}

	// Второй враг доходит до базы.
	w.motion.Update(10)
	waves.Update(0)
	if got := len(w.events[event.WaveEnded]); got != 1 {
		t.Fatalf("expected wave ended, got %d events", got)
	}
	if waves.CurrentWave() != 2 {
		t.Errorf("expected wave 2 started, got %d", waves.CurrentWave())
	}

	waves.Update(0)
	for _, id := range entity.SortedIDs(w.ecs.Enemies) {
		w.enemies.TakeDamage(id, 100)
	}
	waves.Update(0)
	if !waves.Cleared() || len(w.events[event.AllWavesCleared]) != 1 {
		t.Errorf("expected all waves cleared once")
	}
	waves.Update(1)
	if got := len(w.events[event.AllWavesCleared]); got != 1 {
		t.Errorf("expected AllWavesCleared once, got %d", got)
	}
}

func TestWaveSkipsUnknownEnemy(t *testing.T) {
	path := fakePath{{X: 0, Y: 0}, {X: 100, Y: 0}}
	w := newTestWorld(path)
	waves := newTestWaves(w, path, []defs.WaveDefinition{{
		Count:   1,
		Enemies: []defs.SpawnEntry{{EnemyID: "ENEMY_MISSING", Weight: 1}},
	}})
	waves.Update(0)
	if len(w.ecs.Enemies) != 0 {
		t.Errorf("expected nothing spawned for unknown enemy")
	}
	if !waves.Cleared() {
		t.Errorf("expected level to finish after the broken wave")
	}
}
