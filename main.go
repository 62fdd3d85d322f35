package main

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"minesweeper/pkg/engine/logging"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/config"
	"minesweeper/pkg/game/gameplay"
	"minesweeper/pkg/game/i18n"
	"minesweeper/pkg/game/renderer"
	ebitenrenderer "minesweeper/pkg/game/renderer/ebiten"
	"minesweeper/pkg/game/renderer/tui"
	"minesweeper/pkg/game/state"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logCloser, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logCloser.Close()

	if _, err := i18n.Load(cfg.Language); err != nil {
		logging.Log.WithError(err).Fatal("cannot load translations")
	}

	g, err := buildGame(cfg)
	if err != nil {
		logging.Log.WithError(err).Fatal("cannot start game")
	}

	switch cfg.Renderer {
	case config.RendererEbiten:
		err = runEbiten(g)
	default:
		runTUI(g)
	}
	if err != nil {
		logging.Log.WithError(err).Error("renderer stopped")
		logCloser.Close()
		os.Exit(1)
	}
}

// buildGame creates the first game from the resolved configuration
func buildGame(cfg *config.Config) (*state.Game, error) {
	start, err := cfg.StartDifficulty()
	if err != nil {
		return nil, err
	}

	opts := []state.Option{}
	if custom, err := cfg.CustomDifficulty(); err == nil {
		opts = append(opts, state.WithCustom(custom))
	} else {
		logging.Log.WithError(err).Warn("configured custom board is unusable")
	}
	if cfg.Seed != 0 {
		opts = append(opts, state.WithPlacer(board.NewRandomPlacer(cfg.Seed)))
	}

	g, err := state.NewGame(start, opts...)
	if err != nil {
		return nil, err
	}
	g.HeatMap = cfg.HeatMap

	logging.Log.WithFields(logrus.Fields{
		"renderer": cfg.Renderer,
		"seed":     cfg.Seed,
		"language": i18n.Language(),
	}).Info("game configured")
	return g, nil
}

func runTUI(g *state.Game) {
	renderer.SetRenderer(tui.NewStdio())
	renderer.Init()
	gameplay.Run(g)
}

// runEbiten runs the game loop in a goroutine while Ebiten owns the main goroutine
func runEbiten(g *state.Game) error {
	r := ebitenrenderer.New()
	renderer.SetRenderer(r)
	renderer.Init()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer r.Stop()
		gameplay.Run(g)
	}()

	err := r.Run()
	// Closing the window releases a game loop still waiting for input
	r.Stop()
	wg.Wait()
	return err
}
