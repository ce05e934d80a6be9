// internal/render/entities.go
package render

import (
	"image/color"
	"math"

	"go-tower-siege/internal/app"
	"go-tower-siege/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EntityRenderer рисует динамические сущности по снимку игры.
type EntityRenderer struct {
	offsetY float32
}

func NewEntityRenderer(offsetY float32) *EntityRenderer {
	return &EntityRenderer{offsetY: offsetY}
}

func (r *EntityRenderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	for _, tower := range s.Towers {
		x, y := float32(tower.Position.X), float32(tower.Position.Y)+r.offsetY
		if tower.HasStroke {
			vector.DrawFilledCircle(screen, x, y, tower.Radius+2, config.TowerStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, tower.Radius, tower.Color, true)
		r.drawHeading(screen, x, y, tower.Angle, tower.Radius*1.4, config.TowerStrokeColor)
	}

	for _, enemy := range s.Enemies {
		x, y := float32(enemy.Position.X), float32(enemy.Position.Y)+r.offsetY
		fill := enemy.Color
		if enemy.Flashing {
			fill = config.FlashColor
		}
		vector.DrawFilledCircle(screen, x, y, enemy.Radius, fill, true)
		r.drawHeading(screen, x, y, enemy.Angle, enemy.Radius, config.TextLightColor)
		r.drawHealthBar(screen, x, y-enemy.Radius-6, enemy.Health, enemy.MaxHealth)
	}

	for _, proj := range s.Projectiles {
		x, y := float32(proj.Position.X), float32(proj.Position.Y)+r.offsetY
		vector.DrawFilledCircle(screen, x, y, proj.Radius, proj.Color, true)
	}
}

// drawHeading — отрезок по направлению взгляда. Угол в градусах,
// положительный против часовой стрелки при оси Y вверх.
func (r *EntityRenderer) drawHeading(screen *ebiten.Image, x, y float32, angle float64, length float32, clr color.Color) {
	rad := angle * math.Pi / 180
	dx := float32(math.Cos(rad)) * length
	dy := -float32(math.Sin(rad)) * length
	vector.StrokeLine(screen, x, y, x+dx, y+dy, 2, clr, true)
}

func (r *EntityRenderer) drawHealthBar(screen *ebiten.Image, x, y float32, health, maxHealth int) {
	if maxHealth <= 0 || health >= maxHealth {
		return
	}
	const width, height = 24, 3
	ratio := float32(math.Max(float64(health), 0)) / float32(maxHealth)
	vector.DrawFilledRect(screen, x-width/2, y, width, height, color.RGBA{60, 0, 0, 200}, false)
	vector.DrawFilledRect(screen, x-width/2, y, width*ratio, height, color.RGBA{220, 40, 40, 255}, false)
}
