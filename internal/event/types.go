package event

import "go-tower-siege/internal/types"

const (
	EnemySpawned      EventType = "EnemySpawned"      // Враг появился на карте
	EnemyAdvanced     EventType = "EnemyAdvanced"     // Враг взял курс на очередную точку пути
	EnemyKilled       EventType = "EnemyKilled"       // Враг убит снарядами
	EnemyReachedBase  EventType = "EnemyReachedBase"  // Враг дошёл до базы и атаковал
	ProjectileExpired EventType = "ProjectileExpired" // Снаряд долетел до точки и исчез
	TowerPlaced       EventType = "TowerPlaced"       // Башня построена
	WaveStarted       EventType = "WaveStarted"
	WaveEnded         EventType = "WaveEnded"       // Волна закончилась
	AllWavesCleared   EventType = "AllWavesCleared" // Волн больше нет
	HealthChanged     EventType = "HealthChanged"
	CoinsChanged      EventType = "CoinsChanged"
	TimeScaleChanged  EventType = "TimeScaleChanged"
	GameOver          EventType = "GameOver"
)

// AttackEvent — неизменяемое сообщение об атаке базы.
// Получатель у него ровно один: координатор игры.
type AttackEvent struct {
	EnemyID types.EntityID
	Damage  int
}

// EnemyKilledData — данные события EnemyKilled.
// Health — здоровье после смертельного удара, может быть отрицательным.
type EnemyKilledData struct {
	EnemyID types.EntityID
	Reward  int
	Health  int
}

// EnemyAdvancedData — данные события EnemyAdvanced.
type EnemyAdvancedData struct {
	EnemyID  types.EntityID
	Waypoint int
}
