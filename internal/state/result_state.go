// internal/state/result_state.go
package state

import (
	"fmt"
	"image/color"

	"go-tower-siege/internal/config"
	"go-tower-siege/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*ResultState)(nil)

// ResultState показывает итог партии поверх последнего кадра игры.
// R начинает уровень заново.
type ResultState struct {
	stateMachine *StateMachine
	finished     *GameState
}

func NewResultState(sm *StateMachine, finished *GameState) *ResultState {
	return &ResultState{stateMachine: sm, finished: finished}
}

func (s *ResultState) Enter() {
	logger.Log.WithFields(map[string]interface{}{
		"won":    s.finished.game.Won(),
		"health": s.finished.game.Health(),
		"coins":  s.finished.game.Coins(),
	}).Info("Game finished")
}

func (s *ResultState) Exit() {}

func (s *ResultState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeyR) || s.finished.newGame == nil {
		return
	}
	game, err := s.finished.newGame()
	if err != nil {
		logger.Log.WithError(err).Error("Failed to restart game")
		return
	}
	s.stateMachine.SetState(NewGameState(s.stateMachine, game, s.finished.newGame))
}

func (s *ResultState) Draw(screen *ebiten.Image) {
	s.finished.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 150}, false)

	title := "DEFEAT"
	if s.finished.game.Won() {
		title = "VICTORY"
	}
	face := s.finished.face
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	text.Draw(screen, title, face, cx-len(title)*7/2, cy-10, config.TextLightColor)
	hint := fmt.Sprintf("Base %d  Coins %d  -  press R to restart", s.finished.game.Health(), s.finished.game.Coins())
	text.Draw(screen, hint, face, cx-len(hint)*7/2, cy+14, config.TextLightColor)
}
