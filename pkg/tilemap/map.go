// pkg/tilemap/map.go
package tilemap

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrInvalidWaypoint возвращается, если точки пути нельзя упорядочить.
var ErrInvalidWaypoint = errors.New("invalid waypoint")

// ErrInvalidMap возвращается при некорректных размерах карты.
var ErrInvalidMap = errors.New("invalid level map")

type Tile struct {
	Road      bool
	TowerSlot bool
}

// Waypoint — именованная точка пути в координатах клеток.
// Имя — положительное целое число в виде строки, как в редакторе уровней.
type Waypoint struct {
	Name string `json:"name"`
	Col  int    `json:"col"`
	Row  int    `json:"row"`
}

// LevelMap хранит сетку уровня и упорядоченный путь врагов.
type LevelMap struct {
	Cols, Rows int
	TileSize   float64
	Tiles      map[TileCoord]Tile
	Waypoints  []Waypoint

	byIndex map[int]TileCoord
}

// NewLevelMap строит карту. Если roads пуст, дорога прокладывается
// отрезками между соседними точками пути.
func NewLevelMap(cols, rows int, tileSize float64, waypoints []Waypoint, roads, slots []TileCoord) (*LevelMap, error) {
	if cols <= 0 || rows <= 0 || tileSize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d tiles of %.1f px", ErrInvalidMap, cols, rows, tileSize)
	}

	lm := &LevelMap{
		Cols:      cols,
		Rows:      rows,
		TileSize:  tileSize,
		Tiles:     make(map[TileCoord]Tile),
		Waypoints: append([]Waypoint(nil), waypoints...),
		byIndex:   make(map[int]TileCoord, len(waypoints)),
	}

	for _, wp := range waypoints {
		index, err := strconv.Atoi(wp.Name)
		if err != nil || index < 1 {
			return nil, fmt.Errorf("%w: name %q is not a positive integer", ErrInvalidWaypoint, wp.Name)
		}
		if _, dup := lm.byIndex[index]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidWaypoint, wp.Name)
		}
		coord := TileCoord{Col: wp.Col, Row: wp.Row}
		if !lm.Contains(coord) {
			return nil, fmt.Errorf("%w: %q at %v is outside the map", ErrInvalidWaypoint, wp.Name, coord)
		}
		lm.byIndex[index] = coord
	}

	if len(roads) == 0 {
		roads = lm.traceRoad()
	}
	for _, c := range roads {
		t := lm.Tiles[c]
		t.Road = true
		lm.Tiles[c] = t
	}
	for _, c := range slots {
		if !lm.Contains(c) {
			continue
		}
		t := lm.Tiles[c]
		t.TowerSlot = !t.Road
		lm.Tiles[c] = t
	}
	return lm, nil
}

// traceRoad соединяет точки пути по возрастанию номеров.
func (lm *LevelMap) traceRoad() []TileCoord {
	indexes := make([]int, 0, len(lm.byIndex))
	for i := range lm.byIndex {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	var road []TileCoord
	for i, idx := range indexes {
		current := lm.byIndex[idx]
		road = append(road, current)
		if i+1 == len(indexes) {
			break
		}
		next := lm.byIndex[indexes[i+1]]
		for current != next {
			current = current.Step(next)
			road = append(road, current)
		}
	}
	return road
}

// Contains проверяет, лежит ли клетка в пределах карты
func (lm *LevelMap) Contains(c TileCoord) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < lm.Cols && c.Row < lm.Rows
}

func (lm *LevelMap) IsRoad(c TileCoord) bool {
	return lm.Tiles[c].Road
}

// IsTowerSlot — можно ли поставить башню на клетку.
func (lm *LevelMap) IsTowerSlot(c TileCoord) bool {
	return lm.Tiles[c].TowerSlot
}

// TileCoordToWorld возвращает центр клетки в мировых координатах.
func (lm *LevelMap) TileCoordToWorld(c TileCoord) (x, y float64) {
	return c.ToPixel(lm.TileSize)
}

// WorldToTileCoord возвращает клетку под точкой и false, если точка вне карты.
func (lm *LevelMap) WorldToTileCoord(x, y float64) (TileCoord, bool) {
	c := PixelToTile(x, y, lm.TileSize)
	return c, lm.Contains(c)
}

// Waypoint ищет точку пути с номером index. false означает, что путь
// закончился. Это нормальный сигнал, а не ошибка.
func (lm *LevelMap) Waypoint(index int) (x, y float64, ok bool) {
	c, ok := lm.byIndex[index]
	if !ok {
		return 0, 0, false
	}
	x, y = lm.TileCoordToWorld(c)
	return x, y, true
}

// WaypointCount — количество точек пути.
func (lm *LevelMap) WaypointCount() int {
	return len(lm.byIndex)
}

// TowerSlots возвращает все клетки под башни в порядке строк.
func (lm *LevelMap) TowerSlots() []TileCoord {
	var slots []TileCoord
	for c, t := range lm.Tiles {
		if t.TowerSlot {
			slots = append(slots, c)
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Row != slots[j].Row {
			return slots[i].Row < slots[j].Row
		}
		return slots[i].Col < slots[j].Col
	})
	return slots
}
