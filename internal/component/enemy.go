package component

// EnemyState — состояние конечного автомата врага.
type EnemyState int

const (
	EnemyAdvancing EnemyState = iota // идёт к очередной точке пути
	EnemyAttacking                   // дошёл до базы, атакует и исчезает
	EnemyDead                        // убит снарядами
)

func (s EnemyState) String() string {
	switch s {
	case EnemyAdvancing:
		return "advancing"
	case EnemyAttacking:
		return "attacking"
	case EnemyDead:
		return "dead"
	}
	return "unknown"
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID         string     // ID из enemies.json
	Speed         float64    // Скорость движения (пикселей в секунду)
	RotationSpeed float64    // Скорость поворота (градусов в секунду)
	Damage        int        // Урон по базе при достижении конца пути
	Reward        int        // Монеты за убийство
	WaypointIndex int        // Номер текущей точки пути (0 до старта)
	State         EnemyState // Текущее состояние
}
