// internal/ui/build_panel.go
package ui

import (
	"fmt"
	"image/color"

	"go-tower-siege/internal/defs"
	"go-tower-siege/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BuildPanel — ряд вариантов башен над выбранной клеткой.
type BuildPanel struct {
	Options    []defs.TowerDefinition // Отсортированы по стоимости
	OptionSize float32
	Background color.Color
	TextColor  color.Color
	face       font.Face
}

func NewBuildPanel(options []defs.TowerDefinition, optionSize float32, background, textColor color.Color, face font.Face) *BuildPanel {
	return &BuildPanel{
		Options:    options,
		OptionSize: optionSize,
		Background: background,
		TextColor:  textColor,
		face:       face,
	}
}

// origin — левый верхний угол панели для клетки с центром (cx, cy).
func (p *BuildPanel) origin(cx, cy float32) (float32, float32) {
	width := p.OptionSize * float32(len(p.Options))
	return cx - width/2, cy - p.OptionSize*1.6
}

// Draw рисует панель. Недоступные по цене башни затемнены.
func (p *BuildPanel) Draw(screen *ebiten.Image, cx, cy float32, coins int) {
	x0, y0 := p.origin(cx, cy)
	width := p.OptionSize * float32(len(p.Options))
	vector.DrawFilledRect(screen, x0, y0, width, p.OptionSize, p.Background, false)

	for i, def := range p.Options {
		ox := x0 + p.OptionSize*float32(i) + p.OptionSize/2
		oy := y0 + p.OptionSize/2 - 4
		fill := def.Visuals.Color
		if coins < def.Cost {
			fill = render.DarkenColor(fill)
		}
		vector.DrawFilledCircle(screen, ox, oy, p.OptionSize*0.3, fill, true)
		label := fmt.Sprintf("%d", def.Cost)
		text.Draw(screen, label, p.face, int(ox)-len(label)*3, int(y0+p.OptionSize)-2, p.TextColor)
	}
}

// OptionAt возвращает башню под курсором (x, y).
func (p *BuildPanel) OptionAt(cx, cy, x, y float32) (string, bool) {
	x0, y0 := p.origin(cx, cy)
	if y < y0 || y > y0+p.OptionSize || x < x0 {
		return "", false
	}
	i := int((x - x0) / p.OptionSize)
	if i < 0 || i >= len(p.Options) {
		return "", false
	}
	return p.Options[i].ID, true
}
