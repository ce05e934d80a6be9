// pkg/tilemap/tile.go
package tilemap

import "math"

// TileCoord — координаты клетки (столбец, строка), начало в левом верхнем углу
type TileCoord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// ToPixel конвертирует клетку в пиксельные координаты её центра
func (c TileCoord) ToPixel(tileSize float64) (x, y float64) {
	x = float64(c.Col)*tileSize + tileSize/2
	y = float64(c.Row)*tileSize + tileSize/2
	return
}

// PixelToTile конвертирует пиксельные координаты в клетку
func PixelToTile(x, y, tileSize float64) TileCoord {
	return TileCoord{
		Col: int(math.Floor(x / tileSize)),
		Row: int(math.Floor(y / tileSize)),
	}
}

// Step возвращает соседнюю клетку на шаг ближе к target (сначала по столбцам).
func (c TileCoord) Step(target TileCoord) TileCoord {
	switch {
	case c.Col != target.Col:
		c.Col += sign(target.Col - c.Col)
	case c.Row != target.Row:
		c.Row += sign(target.Row - c.Row)
	}
	return c
}
