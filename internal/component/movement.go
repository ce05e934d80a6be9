// component/movement.go
package component

import "math"

// Position — точка в мировых координатах (пиксели, ось Y вниз)
type Position struct {
	X, Y float64
}

// DistanceTo возвращает евклидово расстояние до точки o.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Lerp линейно интерполирует между p и o.
func (p Position) Lerp(o Position, t float64) Position {
	return Position{X: p.X + (o.X-p.X)*t, Y: p.Y + (o.Y-p.Y)*t}
}

// Transform — положение и ориентация сущности.
// Angle хранится в градусах, как у узлов сцены в редакторе уровней.
type Transform struct {
	Position Position
	Angle    float64
}
