package defs

import "fmt"

// SpawnEntry — одна запись в таблице появления врагов волны.
// Weight — относительный шанс выбора EnemyID.
type SpawnEntry struct {
	EnemyID string `json:"enemy_id"`
	Weight  int    `json:"weight" jsonschema:"minimum=1"`
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Count         int          `json:"count" jsonschema:"minimum=1"`
	SpawnInterval float64      `json:"spawn_interval" jsonschema:"description=Seconds of simulation time between spawns,minimum=0"`
	StartDelay    float64      `json:"start_delay,omitempty" jsonschema:"description=Seconds before the first spawn,minimum=0"`
	Enemies       []SpawnEntry `json:"enemies" jsonschema:"minItems=1"`
}

// Validate проверяет волну на согласованность с библиотекой врагов.
func (w WaveDefinition) Validate(enemies map[string]EnemyDefinition) error {
	if w.Count <= 0 {
		return fmt.Errorf("%w: wave count %d must be positive", ErrInvalidDefinition, w.Count)
	}
	if w.SpawnInterval < 0 || w.StartDelay < 0 {
		return fmt.Errorf("%w: wave timings must not be negative", ErrInvalidDefinition)
	}
	if len(w.Enemies) == 0 {
		return fmt.Errorf("%w: wave without enemies", ErrInvalidDefinition)
	}
	for _, e := range w.Enemies {
		if _, ok := enemies[e.EnemyID]; !ok {
			return fmt.Errorf("%w: wave references unknown enemy %q", ErrInvalidDefinition, e.EnemyID)
		}
		if e.Weight <= 0 {
			return fmt.Errorf("%w: enemy %s has weight %d", ErrInvalidDefinition, e.EnemyID, e.Weight)
		}
	}
	return nil
}
