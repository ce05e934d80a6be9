// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 640
	HUDHeight    = 40

	MaxDeltaTime  = 0.06
	ClickCooldown = 200 // мс

	BaseHealth   = 20
	StartCoins   = 100
	TileSize     = 64.0
	DefaultLevel = "LEVEL_1"

	// PauseGraceDelay — задержка (в единицах симуляции) между запросом паузы
	// и фактической остановкой времени, чтобы анимация кнопки успела доиграть.
	PauseGraceDelay = 0.2
	NormalSpeed     = 1.0
	FastSpeed       = 2.0

	EnemySpeed         = 150.0
	EnemyRotationSpeed = 300.0 // градусов в секунду
	EnemyHealth        = 5
	EnemyDamage        = 2
	EnemyRadius        = 14.0
	EnemyAngleOffset   = 0.0 // угол между "лицом" спрайта и осью X+

	DamageFlashDuration = 0.1

	ProjectileSpeed  = 1000.0 // пикселей в секунду
	ProjectileDamage = 2
	ProjectileRadius = 4.0

	TowerRadiusFactor = 0.35
	PanelOptionSize   = 36.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GroundColor      = color.RGBA{60, 90, 60, 255}
	RoadColor        = color.RGBA{150, 120, 80, 255}
	SlotColor        = color.RGBA{90, 90, 110, 255}
	WaypointColor    = color.RGBA{255, 255, 0, 160}
	EnemyColor       = color.RGBA{30, 30, 30, 255}
	FlashColor       = color.RGBA{255, 0, 0, 255}
	ProjectileColor  = color.RGBA{255, 230, 120, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PanelColor       = color.RGBA{30, 30, 40, 230}
	HUDColor         = color.RGBA{10, 10, 15, 220}

	SpeedButtonColors = []color.Color{
		color.RGBA{240, 240, 240, 255}, // x1
		color.RGBA{20, 20, 20, 255},    // x2
	}
	PauseColor = color.RGBA{70, 130, 180, 220}
	PlayColor  = color.RGBA{220, 60, 60, 220}
)
