package render

import (
	"sort"
	"strconv"

	"go-tower-siege/pkg/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TileRenderer рисует статичную часть уровня: землю, дорогу, слоты и точки пути.
// Карта рендерится в изображение один раз и дальше копируется одним вызовом.
type TileRenderer struct {
	level    *tilemap.LevelMap
	colors   MapColors
	fontFace font.Face
	offsetY  float64
	mapImage *ebiten.Image // Предрендеренная карта
}

func NewTileRenderer(level *tilemap.LevelMap, colors MapColors, face font.Face, offsetY float64) *TileRenderer {
	width := int(float64(level.Cols) * level.TileSize)
	height := int(float64(level.Rows) * level.TileSize)
	r := &TileRenderer{
		level:    level,
		colors:   colors,
		fontFace: face,
		offsetY:  offsetY,
		mapImage: ebiten.NewImage(width, height),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage перерисовывает задник.
func (r *TileRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.GroundColor)
	size := float32(r.level.TileSize)

	coords := make([]tilemap.TileCoord, 0, len(r.level.Tiles))
	for c := range r.level.Tiles {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})

	for _, c := range coords {
		tile := r.level.Tiles[c]
		x, y := float32(c.Col)*size, float32(c.Row)*size
		switch {
		case tile.Road:
			vector.DrawFilledRect(r.mapImage, x, y, size, size, r.colors.RoadColor, false)
		case tile.TowerSlot:
			inset := size * 0.1
			vector.DrawFilledRect(r.mapImage, x+inset, y+inset, size-2*inset, size-2*inset, r.colors.SlotColor, true)
		}
	}

	if r.colors.GridWidth > 0 {
		grid := DarkenColor(r.colors.GroundColor)
		for col := 0; col <= r.level.Cols; col++ {
			x := float32(col) * size
			vector.StrokeLine(r.mapImage, x, 0, x, float32(r.level.Rows)*size, r.colors.GridWidth, grid, false)
		}
		for row := 0; row <= r.level.Rows; row++ {
			y := float32(row) * size
			vector.StrokeLine(r.mapImage, 0, y, float32(r.level.Cols)*size, y, r.colors.GridWidth, grid, false)
		}
	}

	for i := 1; i <= r.level.WaypointCount(); i++ {
		x, y, ok := r.level.Waypoint(i)
		if !ok {
			break
		}
		vector.DrawFilledCircle(r.mapImage, float32(x), float32(y), size*0.12, r.colors.WaypointColor, true)
		if r.fontFace != nil {
			text.Draw(r.mapImage, strconv.Itoa(i), r.fontFace, int(x)+8, int(y)-8, r.colors.TextLightColor)
		}
	}
}

// Draw копирует карту на экран со сдвигом под HUD.
func (r *TileRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.colors.BackgroundColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, r.offsetY)
	screen.DrawImage(r.mapImage, op)
}

// ScreenToWorld переводит экранные координаты в мировые.
func (r *TileRenderer) ScreenToWorld(x, y int) (float64, float64) {
	return float64(x), float64(y) - r.offsetY
}

// WorldToScreen переводит мировые координаты в экранные.
func (r *TileRenderer) WorldToScreen(x, y float64) (float32, float32) {
	return float32(x), float32(y + r.offsetY)
}
