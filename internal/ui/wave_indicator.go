package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y  int
	Color color.Color
	face  font.Face
}

func NewWaveIndicator(x, y int, clr color.Color, face font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, Color: clr, face: face}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует "Wave III / IV". Номер 0 означает, что волн больше нет.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, total int) {
	label := "All waves cleared"
	if wave > 0 {
		label = fmt.Sprintf("Wave %s / %s", toRoman(wave), toRoman(total))
	}
	text.Draw(screen, label, i.face, i.X, i.Y, i.Color)
}
