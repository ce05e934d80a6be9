// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/interfaces"
	"go-tower-siege/internal/system"
	"go-tower-siege/internal/utils"
	"go-tower-siege/pkg/logger"
	"go-tower-siege/pkg/tilemap"
)

var (
	ErrUnknownLevel   = errors.New("unknown level")
	ErrUnknownTower   = errors.New("unknown tower")
	ErrNotEnoughCoins = errors.New("not enough coins")
	ErrPaused         = errors.New("game is paused")
	ErrGameOver       = errors.New("game is over")
	// ErrSlotUnavailable — клетка не является слотом для башни.
	ErrSlotUnavailable = system.ErrSlotUnavailable
)

var _ interfaces.BaseAttackHandler = (*Game)(nil)

// Game — координатор: владеет системами, здоровьем базы, монетами и темпом игры.
type Game struct {
	Library  *defs.Library
	LevelDef defs.LevelDefinition
	Level    *tilemap.LevelMap

	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Time               *system.TimeController
	MotionSystem       *system.MotionSystem
	VisualEffectSystem *system.VisualEffectSystem
	EnemySystem        *system.EnemySystem
	ProjectileSystem   *system.ProjectileSystem
	CombatSystem       *system.CombatSystem
	TowerSystem        *system.TowerSystem
	WaveSystem         *system.WaveSystem
	Rng                *utils.PRNGService

	health int
	coins  int
	speed  float64 // Выбранная скорость: 1 или 2
	paused bool    // Игрок нажал паузу; время замрёт после задержки
	over   bool
	won    bool
	panel  component.BuildPanel
}

// NewGame собирает игру для уровня levelID. При seed 0 сид случайный.
func NewGame(lib *defs.Library, levelID string, seed int64) (*Game, error) {
	levelDef, ok := lib.Levels[levelID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, levelID)
	}
	level, err := levelDef.BuildMap()
	if err != nil {
		return nil, err
	}
	spawnX, spawnY, ok := level.Waypoint(1)
	if !ok {
		return nil, fmt.Errorf("level %s: %w: no waypoint 1", levelID, tilemap.ErrInvalidWaypoint)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Library:         lib,
		LevelDef:        levelDef,
		Level:           level,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Time:            system.NewTimeController(),
		Rng:             utils.NewPRNGService(seed),
		health:          levelDef.StartHealth,
		coins:           levelDef.StartCoins,
		speed:           config.NormalSpeed,
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.EnemyKilled, listener)
	eventDispatcher.Subscribe(event.AllWavesCleared, listener)

	g.MotionSystem = system.NewMotionSystem(ecs)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, g.MotionSystem)
	g.EnemySystem = system.NewEnemySystem(ecs, g.MotionSystem, g.VisualEffectSystem, level, g, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.MotionSystem, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, g.ProjectileSystem, g.EnemySystem)
	g.TowerSystem = system.NewTowerSystem(ecs, level, g.MotionSystem, g.EnemySystem, g.ProjectileSystem, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, g.EnemySystem, lib.Enemies, levelDef.Waves,
		component.Position{X: spawnX, Y: spawnY}, g.Rng, eventDispatcher)

	logger.Log.WithFields(map[string]interface{}{
		"level": levelID,
		"seed":  g.Rng.Seed(),
		"waves": len(levelDef.Waves),
	}).Info("Game created")
	return g, nil
}

// Update продвигает игру на реальный шаг wallDelta.
// После поражения симуляция стоит.
func (g *Game) Update(wallDelta float64) {
	if g.over {
		return
	}
	dt := g.Time.Tick(wallDelta)

	g.WaveSystem.Update(dt)
	g.TowerSystem.Update(dt)
	g.MotionSystem.Update(dt)
	g.CombatSystem.Update()
	g.ProjectileSystem.Cleanup()
}

// OnAttack — враг дошёл до базы.
func (g *Game) OnAttack(attack event.AttackEvent) {
	if g.over {
		return
	}
	g.health -= attack.Damage
	g.EventDispatcher.Dispatch(event.Event{Type: event.HealthChanged, Data: g.health})
	logger.Log.WithFields(map[string]interface{}{
		"enemy":  attack.EnemyID,
		"damage": attack.Damage,
		"health": g.health,
	}).Info("Base attacked")

	if g.health <= 0 {
		g.over = true
		g.panel.Visible = false
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.health})
		logger.Log.WithField("wave", g.WaveSystem.CurrentWave()).Warn("Base destroyed, game over")
	}
}

// Health — здоровье базы, может быть отрицательным.
func (g *Game) Health() int {
	return g.health
}

// Coins — текущие монеты.
func (g *Game) Coins() int {
	return g.coins
}

// AddCoins меняет монеты на delta, delta может быть отрицательной.
func (g *Game) AddCoins(delta int) {
	g.coins += delta
	g.EventDispatcher.Dispatch(event.Event{Type: event.CoinsChanged, Data: g.coins})
}

// ToggleSpeed переключает x1 и x2. Во время паузы игнорируется.
func (g *Game) ToggleSpeed() {
	if g.paused || g.over {
		return
	}
	if g.speed == config.NormalSpeed {
		g.speed = config.FastSpeed
	} else {
		g.speed = config.NormalSpeed
	}
	if err := g.Time.SetScale(g.speed); err != nil {
		logger.Log.WithError(err).Error("Failed to change game speed")
		return
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TimeScaleChanged, Data: g.speed})
}

// TogglePause ставит паузу с задержкой или сразу снимает её.
func (g *Game) TogglePause() {
	if g.over {
		return
	}
	g.paused = !g.paused
	if g.paused {
		g.panel.Visible = false
		g.Time.Pause()
	} else {
		g.Time.Resume()
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TimeScaleChanged, Data: g.speed})
}

// IsPaused — игрок поставил паузу (время может ещё идти в пределах задержки).
func (g *Game) IsPaused() bool {
	return g.paused
}

// Speed — выбранная скорость игры.
func (g *Game) Speed() float64 {
	return g.speed
}

func (g *Game) IsOver() bool {
	return g.over
}

// Won — все волны отбиты, база цела.
func (g *Game) Won() bool {
	return g.won
}

// GameEventListener обрабатывает события, важные для координатора.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok && data.Reward != 0 {
			l.game.AddCoins(data.Reward)
		}
	case event.AllWavesCleared:
		if !l.game.over {
			l.game.won = true
			logger.Log.WithFields(map[string]interface{}{
				"health": l.game.health,
				"coins":  l.game.coins,
			}).Info("All waves cleared")
		}
	}
}
