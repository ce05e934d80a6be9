// internal/app/tower_management.go
package app

import (
	"fmt"

	"go-tower-siege/internal/component"
	"go-tower-siege/pkg/logger"
	"go-tower-siege/pkg/tilemap"
)

// OnMapTouch — клик по клетке карты. Прячет панель строительства и снова
// открывает её на свободном слоте под башню.
func (g *Game) OnMapTouch(coord tilemap.TileCoord) {
	if g.paused || g.over {
		return
	}
	g.panel.Visible = false
	if !g.Level.IsTowerSlot(coord) || g.TowerSystem.FindTowerByCoord(coord) != 0 {
		return
	}
	g.panel = component.BuildPanel{Visible: true, Coord: coord}
}

// OnScreenTouch переводит пиксельные координаты в клетку.
// Клик вне карты только прячет панель.
func (g *Game) OnScreenTouch(x, y float64) {
	coord, ok := g.Level.WorldToTileCoord(x, y)
	if !ok {
		if !g.paused {
			g.panel.Visible = false
		}
		return
	}
	g.OnMapTouch(coord)
}

// BuildTower строит башню towerID на coord и списывает её стоимость.
// Панель прячется при любом исходе.
func (g *Game) BuildTower(towerID string, coord tilemap.TileCoord) error {
	defer g.HidePanel()

	if g.over {
		return ErrGameOver
	}
	if g.paused {
		return ErrPaused
	}
	def, ok := g.Library.Towers[towerID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTower, towerID)
	}
	if !g.CanAfford(towerID) {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrNotEnoughCoins, towerID, def.Cost, g.coins)
	}

	id, err := g.TowerSystem.Build(def, coord)
	if err != nil {
		return err
	}
	g.AddCoins(-def.Cost)
	logger.Log.WithFields(map[string]interface{}{
		"tower": towerID,
		"id":    id,
		"col":   coord.Col,
		"row":   coord.Row,
		"coins": g.coins,
	}).Info("Tower built")
	return nil
}

// Panel возвращает состояние панели строительства.
func (g *Game) Panel() component.BuildPanel {
	return g.panel
}

func (g *Game) HidePanel() {
	g.panel.Visible = false
}

// CanAfford — хватает ли монет на башню towerID.
func (g *Game) CanAfford(towerID string) bool {
	def, ok := g.Library.Towers[towerID]
	return ok && g.coins >= def.Cost
}
