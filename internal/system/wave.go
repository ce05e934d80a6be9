// internal/system/wave.go
package system

import (
	"errors"
	"fmt"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
	"go-tower-siege/internal/utils"
	"go-tower-siege/pkg/logger"
)

// ErrUnknownDefinition — волна ссылается на отсутствующего врага.
var ErrUnknownDefinition = errors.New("unknown definition")

// WaveSystem выпускает врагов волнами уровня. Следующая волна начинается,
// когда предыдущая выпущена целиком и на карте не осталось её врагов.
type WaveSystem struct {
	ecs             *entity.ECS
	enemies         *EnemySystem
	enemyDefs       map[string]defs.EnemyDefinition
	waves           []defs.WaveDefinition
	spawn           component.Position
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	active          map[types.EntityID]struct{}
	next            int // Индекс следующей волны в waves
	cleared         bool
}

func NewWaveSystem(ecs *entity.ECS, enemies *EnemySystem, enemyDefs map[string]defs.EnemyDefinition,
	waves []defs.WaveDefinition, spawn component.Position, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		enemies:         enemies,
		enemyDefs:       enemyDefs,
		waves:           waves,
		spawn:           spawn,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		active:          make(map[types.EntityID]struct{}),
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ws)
	eventDispatcher.Subscribe(event.EnemyReachedBase, ws)
	ws.startNextWave()
	return ws
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyKilledData:
		delete(s.active, data.EnemyID)
	case event.AttackEvent:
		delete(s.active, data.EnemyID)
	}
}

// Update отсчитывает таймер появления и завершает волну.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}

	wave.SpawnTimer -= deltaTime
	for wave.EnemiesToSpawn > 0 && wave.SpawnTimer <= timeEpsilon {
		if err := s.spawnEnemy(wave); err != nil {
			logger.Log.WithError(err).WithField("wave", wave.Number).Error("Failed to spawn enemy")
		}
		wave.EnemiesToSpawn--
		wave.SpawnTimer += wave.SpawnInterval
	}

	if wave.EnemiesToSpawn == 0 && len(s.active) == 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
		logger.Log.WithField("wave", wave.Number).Info("Wave ended")
		s.startNextWave()
	}
}

// CurrentWave возвращает номер идущей волны или 0, если волн больше нет.
func (s *WaveSystem) CurrentWave() int {
	if s.ecs.Wave == nil {
		return 0
	}
	return s.ecs.Wave.Number
}

// TotalWaves — число волн уровня.
func (s *WaveSystem) TotalWaves() int {
	return len(s.waves)
}

// Cleared — все волны выпущены и отбиты.
func (s *WaveSystem) Cleared() bool {
	return s.cleared
}

// ActiveEnemies — сколько врагов текущих волн ещё на карте.
func (s *WaveSystem) ActiveEnemies() int {
	return len(s.active)
}

func (s *WaveSystem) startNextWave() {
	if s.next >= len(s.waves) {
		s.ecs.Wave = nil
		if !s.cleared {
			s.cleared = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.AllWavesCleared})
		}
		return
	}
	def := s.waves[s.next]
	s.next++
	s.ecs.Wave = &component.Wave{
		Number:         s.next,
		EnemiesToSpawn: def.Count,
		SpawnTimer:     def.StartDelay,
		SpawnInterval:  def.SpawnInterval,
		Entries:        def.Enemies,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: s.next})
	logger.Log.WithFields(map[string]interface{}{"wave": s.next, "count": def.Count}).Info("Wave started")
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) error {
	enemyID := s.rng.ChooseWeighted(wave.Entries)
	def, ok := s.enemyDefs[enemyID]
	if !ok {
		return fmt.Errorf("enemy %q: %w", enemyID, ErrUnknownDefinition)
	}
	id, err := s.enemies.Spawn(def, s.spawn)
	if err != nil {
		return err
	}
	// Враг мог дойти до базы прямо в Spawn, если путь из одной точки.
	if s.enemies.IsAlive(id) {
		s.active[id] = struct{}{}
	}
	return nil
}
