// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUD — верхняя полоса: здоровье базы, монеты и индикатор скорости.
type HUD struct {
	Width, Height float32
	Background    color.Color
	TextColor     color.Color
	face          font.Face
}

func NewHUD(width, height float32, background, textColor color.Color, face font.Face) *HUD {
	return &HUD{Width: width, Height: height, Background: background, TextColor: textColor, face: face}
}

func (h *HUD) Draw(screen *ebiten.Image, health, maxHealth, coins int, speed float64, pausePending bool) {
	vector.DrawFilledRect(screen, 0, 0, h.Width, h.Height, h.Background, false)

	baseline := int(h.Height/2) + 4
	text.Draw(screen, fmt.Sprintf("Base %d/%d", health, maxHealth), h.face, 12, baseline, h.healthColor(health, maxHealth))
	text.Draw(screen, fmt.Sprintf("Coins %d", coins), h.face, 140, baseline, h.TextColor)
	status := fmt.Sprintf("x%.0f", speed)
	if pausePending {
		status = "pausing"
	}
	text.Draw(screen, status, h.face, 250, baseline, h.TextColor)
}

// healthColor краснеет, когда у базы остаётся меньше половины здоровья.
func (h *HUD) healthColor(health, maxHealth int) color.Color {
	if maxHealth > 0 && health*2 < maxHealth {
		return color.RGBA{230, 70, 70, 255}
	}
	return h.TextColor
}
