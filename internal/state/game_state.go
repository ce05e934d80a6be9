// internal/state/game_state.go
package state

import (
	"errors"
	"time"

	"go-tower-siege/internal/app"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	entityrender "go-tower-siege/internal/render"
	"go-tower-siege/internal/ui"
	"go-tower-siege/pkg/logger"
	"go-tower-siege/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// NewGameFunc создаёт новую партию, нужна для перезапуска.
type NewGameFunc func() (*app.Game, error)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	newGame       NewGameFunc
	tiles         *render.TileRenderer
	entities      *entityrender.EntityRenderer
	hud           *ui.HUD
	waveIndicator *ui.WaveIndicator
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	buildPanel    *ui.BuildPanel
	face          font.Face
	lastClickTime time.Time
}

var _ State = (*GameState)(nil)

func NewGameState(sm *StateMachine, game *app.Game, newGame NewGameFunc) *GameState {
	face := basicfont.Face7x13
	mapColors := render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GroundColor:     config.GroundColor,
		RoadColor:       config.RoadColor,
		SlotColor:       config.SlotColor,
		WaypointColor:   config.WaypointColor,
		TextLightColor:  config.TextLightColor,
		GridWidth:       1,
	}

	options := make([]defs.TowerDefinition, 0, len(game.Library.Towers))
	for _, id := range game.Library.TowerIDs() {
		options = append(options, game.Library.Towers[id])
	}

	buttonY := float32(config.HUDHeight) / 2
	return &GameState{
		sm:            sm,
		game:          game,
		newGame:       newGame,
		tiles:         render.NewTileRenderer(game.Level, mapColors, face, config.HUDHeight),
		entities:      entityrender.NewEntityRenderer(config.HUDHeight),
		hud:           ui.NewHUD(config.ScreenWidth, config.HUDHeight, config.HUDColor, config.TextLightColor, face),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth-260, config.HUDHeight/2+4, config.TextLightColor, face),
		speedButton:   ui.NewSpeedButton(config.ScreenWidth-90, buttonY, 10, config.SpeedButtonColors),
		pauseButton:   ui.NewPauseButton(config.ScreenWidth-40, buttonY, 9, config.PauseColor, config.PlayColor),
		buildPanel:    ui.NewBuildPanel(options, config.PanelOptionSize, config.PanelColor, config.TextLightColor, face),
		face:          face,
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.game.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.game.ToggleSpeed()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleClick(x, y)
	}

	g.game.Update(deltaTime)
	g.pauseButton.SetPaused(g.game.IsPaused())
	g.speedButton.SetFast(g.game.Speed() == config.FastSpeed)

	if g.game.IsOver() || g.game.Won() {
		g.sm.SetState(NewResultState(g.sm, g))
	}
}

func (g *GameState) handleClick(x, y int) {
	if time.Since(g.lastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return
	}
	g.lastClickTime = time.Now()
	mx, my := float32(x), float32(y)

	switch {
	case g.pauseButton.IsClicked(mx, my):
		g.game.TogglePause()
		return
	case g.speedButton.IsClicked(mx, my):
		g.game.ToggleSpeed()
		return
	}

	if panel := g.game.Panel(); panel.Visible {
		cx, cy := g.tiles.WorldToScreen(g.game.Level.TileCoordToWorld(panel.Coord))
		if towerID, ok := g.buildPanel.OptionAt(cx, cy, mx, my); ok {
			if err := g.game.BuildTower(towerID, panel.Coord); err != nil {
				entry := logger.Log.WithError(err).WithField("tower", towerID)
				if errors.Is(err, app.ErrNotEnoughCoins) {
					entry.Debug("Tower rejected")
				} else {
					entry.Warn("Tower rejected")
				}
			}
			return
		}
	}

	if y < config.HUDHeight {
		return
	}
	wx, wy := g.tiles.ScreenToWorld(x, y)
	g.game.OnScreenTouch(wx, wy)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	s := g.game.Snapshot()

	g.tiles.Draw(screen)
	g.entities.Draw(screen, s)

	if s.Panel.Visible {
		cx, cy := g.tiles.WorldToScreen(g.game.Level.TileCoordToWorld(s.Panel.Coord))
		g.buildPanel.Draw(screen, cx, cy, s.Coins)
	}

	g.hud.Draw(screen, s.Health, g.game.LevelDef.StartHealth, s.Coins, s.Speed, s.PausePending)
	g.waveIndicator.Draw(screen, s.Wave, s.TotalWaves)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
}
