// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-tower-siege/internal/defs"
)

// PRNGService — источник случайности для волн. Один сид даёт одинаковую
// последовательность врагов, что нужно для воспроизводимых забегов и тестов.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создаёт генератор. Сид 0 заменяется текущим временем.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// ChooseWeighted выбирает EnemyID пропорционально весам.
// Пустая таблица даёт "", таблица без положительных весов даёт первую запись.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) string {
	if len(entries) == 0 {
		return ""
	}
	total := 0
	for _, e := range entries {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total == 0 {
		return entries[0].EnemyID
	}

	r := s.Intn(total)
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		if r < e.Weight {
			return e.EnemyID
		}
		r -= e.Weight
	}
	return entries[len(entries)-1].EnemyID
}
