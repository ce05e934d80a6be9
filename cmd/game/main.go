// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-tower-siege/internal/app"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/state"
	"go-tower-siege/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsDir := flag.String("defs", "", "directory with enemies.json, towers.json and levels.json (embedded defaults when empty)")
	levelID := flag.String("level", config.DefaultLevel, "level id to play")
	seed := flag.Int64("seed", 0, "wave RNG seed, 0 for random")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty to disable")
	flag.Parse()

	logger.Init()

	if *pprofAddr != "" {
		go func() {
			logger.Log.WithError(http.ListenAndServe(*pprofAddr, nil)).Warn("pprof server stopped")
		}()
	}

	var lib *defs.Library
	var err error
	if *defsDir == "" {
		lib, err = defs.LoadDefault()
	} else {
		lib, err = defs.LoadDir(*defsDir)
	}
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load definitions")
	}

	newGame := func() (*app.Game, error) {
		return app.NewGame(lib, *levelID, *seed)
	}
	game, err := newGame()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create game")
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game, newGame))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Siege")
	if err := ebiten.RunGame(a); err != nil {
		logger.Log.WithError(err).Fatal("Game loop failed")
	}
}
