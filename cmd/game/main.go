// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"time"

	"corridor-defense/internal/audio"
	"corridor-defense/internal/config"
	"corridor-defense/internal/debug"
	"corridor-defense/internal/defs"
	"corridor-defense/internal/entity"
	"corridor-defense/internal/state"
	"corridor-defense/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
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
	return a.width, a.height
}

func main() {
	catalogPath := flag.String("catalog", "", "path to a YAML catalog (embedded catalog if empty)")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	debugMode := flag.Bool("debug", false, "enable runtime invariant assertions")
	debugAddr := flag.String("debug-addr", config.DefaultDebugAddr, "debug HTTP server address, empty disables it")
	mute := flag.Bool("mute", false, "start without audio")
	menu := flag.Bool("menu", false, "show the start screen before the game")
	flag.Parse()

	logger.Init()
	entity.DebugAssertions = *debugMode

	var (
		catalog *defs.Catalog
		err     error
	)
	if *catalogPath == "" {
		catalog, err = defs.Default()
	} else {
		catalog, err = defs.LoadCatalog(*catalogPath)
	}
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load catalog")
	}
	logger.Log.WithFields(logrus.Fields{
		"monsters": len(catalog.Monsters),
		"towers":   len(catalog.Towers),
		"waves":    len(catalog.Waves),
	}).Info("Catalog loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var hub *debug.SnapshotHub
	if *debugAddr != "" {
		hub = debug.NewSnapshotHub()
		go func() {
			if err := debug.Serve(ctx, *debugAddr, hub); err != nil {
				logger.Log.WithError(err).Error("Debug server stopped")
			}
		}()
	}

	var sound *audio.SoundManager
	if !*mute {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			logger.Log.WithError(err).Warn("Audio disabled")
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	opts := state.Options{
		Catalog: catalog,
		Seed:    *seed,
		Hub:     hub,
		Sound:   sound,
	}
	sm := state.NewStateMachine() // Создаём машину состояний
	if *menu {
		sm.SetState(state.NewMenuState(sm, opts))
	} else {
		sm.SetState(state.NewGameState(sm, opts))
	}

	width := int(float64(catalog.Board.Columns) * catalog.Board.CellSize)
	height := int(float64(catalog.Board.Rows) * catalog.Board.CellSize)
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          width,
		height:         height,
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Corridor Defense")
	if err := ebiten.RunGame(app); err != nil {
		logger.Log.WithError(err).Error("Game loop failed")
	}
}
