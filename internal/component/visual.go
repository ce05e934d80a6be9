// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
// Снимается одноразовым таймером планировщика.
type DamageFlash struct {
	Duration float64 // Общая продолжительность эффекта
	TimerID  uint64  // Таймер, который снимет вспышку
}
