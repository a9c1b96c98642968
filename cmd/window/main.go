// Command window runs the raycaster in a desktop window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"raycaster/assets"
	"raycaster/internal/config"
	"raycaster/internal/generate"
	"raycaster/internal/geom"
	"raycaster/internal/logging"
	"raycaster/internal/window"

	"github.com/hajimehoshi/ebiten/v2"
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
	scale := flag.Int("scale", 2, "Window pixels per projection pixel")
	flag.StringVar(&cfg.Map, "map", cfg.Map, "Map to load ("+strings.Join(assets.MapNames(), ", ")+", or "+generate.MapName+")")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for the generated maze")
	flag.IntVar(&cfg.StripWidth, "strip", cfg.StripWidth, "Pixels per ray column")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (DEBUG, INFO, WARNING, ERROR)")
	flag.Parse()
	cfg.FOV = geom.Radians(*fovDeg)

	if err := logging.Init(os.Stderr, cfg.LogLevel, true); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if *scale < 1 {
		return fmt.Errorf("scale %d must be at least 1", *scale)
	}

	w, err := window.New(cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.ScreenWidth**scale, cfg.ScreenHeight**scale)
	ebiten.SetWindowTitle(w.Title())
	ebiten.SetTPS(cfg.TickRate)

	logging.Log.Infof("window open on %s, %d rays", cfg.Map, cfg.NumRays())
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	s := w.Simulation().Stats()
	logging.Log.Infof("closed after %d ticks, walked %.0f", s.Ticks, s.Distance)
	return nil
}
