package system

import (
	"errors"
	"fmt"

	"go-tower-siege/internal/config"
)

// ErrInvalidScale возвращается при отрицательном множителе времени.
var ErrInvalidScale = errors.New("time scale must not be negative")

const timeEpsilon = 1e-9

// TimeController владеет глобальным множителем времени симуляции
// и переводит реальные тики в масштабированные.
type TimeController struct {
	scale       float64 // Текущий множитель (0 на паузе)
	activeScale float64 // Множитель, который вернёт Resume
	paused      bool
	pending     bool    // Пауза запрошена, но ещё не наступила
	pauseTimer  float64 // Сколько времени симуляции осталось до паузы
	now         float64 // Прошедшее время симуляции
}

func NewTimeController() *TimeController {
	return &TimeController{scale: config.NormalSpeed, activeScale: config.NormalSpeed}
}

// SetScale задаёт множитель. Во время паузы лишь запоминает его до Resume.
func (c *TimeController) SetScale(factor float64) error {
	if factor < 0 {
		return fmt.Errorf("%w: %.2f", ErrInvalidScale, factor)
	}
	c.activeScale = factor
	if !c.paused {
		c.scale = factor
	}
	return nil
}

// Pause останавливает время через config.PauseGraceDelay единиц симуляции.
func (c *TimeController) Pause() {
	if c.paused || c.pending {
		return
	}
	c.pending = true
	c.pauseTimer = config.PauseGraceDelay
}

// Resume сразу возвращает прежний множитель и отменяет отложенную паузу.
func (c *TimeController) Resume() {
	c.pending = false
	c.pauseTimer = 0
	c.paused = false
	c.scale = c.activeScale
}

// Tick возвращает масштабированный шаг для реального шага wallDelta.
// Множитель читается заново на каждом тике. Тик, на котором истекает
// отложенная пауза, обрезается так, чтобы время замерло ровно в срок.
func (c *TimeController) Tick(wallDelta float64) float64 {
	if wallDelta <= 0 {
		return 0
	}
	scaled := wallDelta * c.scale
	if c.pending && scaled > 0 {
		if scaled >= c.pauseTimer-timeEpsilon {
			scaled = c.pauseTimer
			c.pending = false
			c.pauseTimer = 0
			c.paused = true
			c.scale = 0
		} else {
			c.pauseTimer -= scaled
		}
	}
	c.now += scaled
	return scaled
}

func (c *TimeController) Scale() float64 {
	return c.scale
}

// IsPaused — время фактически остановлено паузой.
func (c *TimeController) IsPaused() bool {
	return c.paused
}

// PausePending — пауза запрошена и ждёт истечения задержки.
func (c *TimeController) PausePending() bool {
	return c.pending
}

// Now возвращает суммарное время симуляции.
func (c *TimeController) Now() float64 {
	return c.now
}
