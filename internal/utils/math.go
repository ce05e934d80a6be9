// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// ToDegrees переводит радианы в градусы
func ToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Bearing возвращает угол (в градусах) от точки (x0, y0) к (x1, y1).
// Знак инвертирован: положительный угол означает поворот по часовой стрелке на экране
// с осью Y вверх.
func Bearing(x0, y0, x1, y1 float64) float64 {
	return -ToDegrees(math.Atan2(y1-y0, x1-x0))
}

// NormalizeDegrees нормализует угол в диапазон (-180, 180]
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle > 180 {
		angle -= 360
	} else if angle <= -180 {
		angle += 360
	}
	return angle
}

// ShortestAngleDelta находит кратчайшую знаковую разницу между углами
func ShortestAngleDelta(from, to float64) float64 {
	return NormalizeDegrees(to - from)
}
