// internal/component/projectile.go
package component

import "go-tower-siege/internal/types"

// Projectile представляет летящий снаряд.
// Цель фиксируется при запуске и больше не меняется.
type Projectile struct {
	OwnerID types.EntityID // Башня, выпустившая снаряд
	Origin  Position
	Target  Position
	Speed   float64
	Damage  int
	Arrived bool // Долетел до цели, будет удалён в конце тика
}
