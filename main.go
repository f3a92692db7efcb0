package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/alsescape/config"
	"github.com/milk9111/alsescape/logger"
	"github.com/milk9111/alsescape/prefabs"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the game config")
	debug := flag.Bool("debug", false, "enable debug overlay")
	levelName := flag.String("level", "", "level file (embedded name or path, .json optional)")
	pawn := flag.String("pawn", "", "default pawn prefab")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		cfg.Debug = true
	}
	if *levelName != "" {
		cfg.Level = *levelName
	}
	if *pawn != "" {
		cfg.DefaultPawn = *pawn
	}
	if cfg.PrefabDir != "" {
		prefabs.Dir = cfg.PrefabDir
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	var watcher *prefabs.Watcher
	if cfg.HotReload {
		dirs := []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"), filepath.Dir(*configPath)}
		watcher, err = prefabs.NewWatcher(dirs...)
		if err != nil {
			lg.Warn("hot reload disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg, *configPath, watcher, lg)
	if err != nil {
		lg.Fatal("start game", zap.Error(err))
	}

	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(game); err != nil {
		lg.Error("game exited", zap.Error(err))
	}
}
