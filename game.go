package main

import (
	"fmt"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/milk9111/alsescape/common"
	"github.com/milk9111/alsescape/config"
	"github.com/milk9111/alsescape/gamemode"
	"github.com/milk9111/alsescape/prefabs"
)

type Game struct {
	frames int

	cfg        config.Config
	configPath string
	logger     *zap.Logger

	mode     *gamemode.GameMode
	viewport *viewport
	pauseUI  *ebitenui.UI
	watcher  *prefabs.Watcher

	paused  bool
	restart bool
	quit    bool
}

func NewGame(cfg config.Config, configPath string, watcher *prefabs.Watcher, logger *zap.Logger) (*Game, error) {
	g := &Game{
		cfg:        cfg,
		configPath: configPath,
		logger:     logger,
		viewport:   &viewport{},
		watcher:    watcher,
	}
	g.mode = gamemode.New(gamemode.Options{
		Level:       cfg.Level,
		DefaultPawn: cfg.DefaultPawn,
		HUDClass:    cfg.HUD.Class,
		Delta:       cfg.Delta(),
	}, newEbitenInput(), newHUDWidget, g.viewport, logger)

	if err := g.mode.BeginPlay(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	g.drainWatcher()

	if g.quit {
		return ebiten.Termination
	}
	if g.restart {
		g.restart = false
		g.paused = false
		if err := g.mode.Restart(); err != nil {
			return fmt.Errorf("restart: %w", err)
		}
	}

	if pausePressed() {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.mode.Update()
	g.viewport.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	renderWorld(g.mode.World(), screen, g.frames)
	g.viewport.Draw(screen)

	if g.cfg.Debug {
		pawn := g.mode.Pawn()
		msg := fmt.Sprintf("FPS: %.2f  state: %s", ebiten.ActualFPS(), g.mode.State())
		if pawn != nil {
			msg += fmt.Sprintf("\nstamina: %.2f  speed: %.0f  yaw: %.1f", pawn.Stamina.Current(), pawn.MaxWalkSpeed(), pawn.Yaw())
		}
		ebitenutil.DebugPrintAt(screen, msg, 10, common.BaseHeight-40)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
}

func (g *Game) resume()         { g.setPaused(false) }
func (g *Game) requestRestart() { g.restart = true; g.setPaused(false) }
func (g *Game) requestQuit()    { g.quit = true }

// drainWatcher applies hot reloads queued since the last frame without
// blocking the loop.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyFileChange(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("watcher error", zap.Error(err))
			}
		default:
			return
		}
	}
}

func (g *Game) applyFileChange(change prefabs.Change) {
	if g.configPath != "" && filepath.Base(change.Path) == filepath.Base(g.configPath) {
		cfg, err := config.Load(g.configPath)
		if err != nil {
			g.logger.Warn("config reload failed", zap.Error(err))
			return
		}
		g.cfg.Debug = cfg.Debug
		g.logger.Info("config reloaded", zap.Bool("debug", cfg.Debug))
		return
	}
	g.mode.HandleFileChange(change)
}
