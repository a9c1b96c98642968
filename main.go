package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"raycaster/assets"
	"raycaster/internal/config"
	"raycaster/internal/game"
	"raycaster/internal/generate"
	"raycaster/internal/geom"
	"raycaster/internal/logging"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv(config.Default())
	if err != nil {
		return err
	}
	fovDeg := flag.Float64("fov", cfg.FOV*180/math.Pi, "Field of view in degrees")
	listMaps := flag.Bool("list-maps", false, "Print the built-in map names and exit")
	flag.StringVar(&cfg.Map, "map", cfg.Map, "Map to load ("+strings.Join(assets.MapNames(), ", ")+", or "+generate.MapName+")")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for the generated maze")
	flag.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "Ticks per second")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Write logs to this file")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (DEBUG, INFO, WARNING, ERROR)")
	flag.Parse()
	cfg.FOV = geom.Radians(*fovDeg)

	if *listMaps {
		for _, name := range assets.MapNames() {
			fmt.Printf("%-10s %s\n", name, assets.Maps[name].Title)
		}
		fmt.Printf("%-10s %s\n", generate.MapName, "Generated rooms and corridors (-seed)")
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The terminal belongs to tcell, so logs only go to a file.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		if err := logging.Init(f, cfg.LogLevel, false); err != nil {
			return err
		}
	} else {
		logging.Discard()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	g, err := game.New(screen, cfg)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := g.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
