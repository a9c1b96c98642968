// Package config holds the tunable constants of a simulation and the
// environment overrides the hosts accept.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"raycaster/internal/geom"
)

// Environment variables read by FromEnv.
const (
	EnvMap      = "RAYCASTER_MAP"
	EnvFOV      = "RAYCASTER_FOV_DEGREES"
	EnvRays     = "RAYCASTER_RAYS"
	EnvTickRate = "RAYCASTER_TICK_RATE"
	EnvLogFile  = "RAYCASTER_LOG_FILE"
	EnvLogLevel = "RAYCASTER_LOG_LEVEL"
	EnvSeed     = "RAYCASTER_SEED"
)

var ErrInvalid = errors.New("config: invalid value")

// Config describes one simulation and the virtual screen it projects onto.
type Config struct {
	Map          string  // name of a layout in assets.Maps, or "maze"
	Seed         int64   // random source for generated layouts
	TileSize     float64 // world units per grid cell
	ScreenWidth  int     // projection plane width in pixels
	ScreenHeight int     // projection plane height in pixels
	StripWidth   int     // pixels per ray column
	FOV          float64 // radians

	MoveSpeed     float64 // world units per tick
	RotationSpeed float64 // radians per tick
	Radius        float64 // observer radius, overview only

	MinimapScale float64
	TickRate     int // ticks per second
	HoldTicks    int // ticks a terminal key press keeps its intent alive

	LogFile  string
	LogLevel string
}

// Default returns the settings of the classic 15x11 courtyard demo.
func Default() Config {
	return Config{
		Map:           "courtyard",
		TileSize:      32,
		ScreenWidth:   15 * 32,
		ScreenHeight:  11 * 32,
		StripWidth:    1,
		FOV:           geom.Radians(60),
		MoveSpeed:     2,
		RotationSpeed: geom.Radians(2),
		Radius:        3,
		MinimapScale:  0.2,
		TickRate:      60,
		HoldTicks:     6,
		LogLevel:      "INFO",
	}
}

// NumRays is the number of columns cast per tick.
func (c Config) NumRays() int {
	return c.ScreenWidth / c.StripWidth
}

// TickInterval is the wall-clock time between ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Validate reports the first setting a simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Map == "":
		return fmt.Errorf("%w: empty map name", ErrInvalid)
	case !(c.TileSize > 0) || math.IsInf(c.TileSize, 0):
		return fmt.Errorf("%w: tile size %v", ErrInvalid, c.TileSize)
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalid, c.ScreenWidth, c.ScreenHeight)
	case c.StripWidth <= 0 || c.StripWidth > c.ScreenWidth:
		return fmt.Errorf("%w: strip width %d", ErrInvalid, c.StripWidth)
	case !(c.FOV > 0 && c.FOV < math.Pi):
		return fmt.Errorf("%w: field of view %v rad must be in (0, π)", ErrInvalid, c.FOV)
	case c.MoveSpeed < 0 || c.RotationSpeed < 0:
		return fmt.Errorf("%w: negative speed", ErrInvalid)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalid, c.TickRate)
	case c.HoldTicks < 1:
		return fmt.Errorf("%w: hold ticks %d", ErrInvalid, c.HoldTicks)
	}
	return nil
}

// FromEnv overlays RAYCASTER_* environment variables onto c. Unset
// variables leave the field alone; malformed ones are an error.
func FromEnv(c Config) (Config, error) {
	if v := os.Getenv(EnvMap); v != "" {
		c.Map = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvFOV); v != "" {
		deg, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvFOV, err)
		}
		c.FOV = geom.Radians(deg)
	}
	if v := os.Getenv(EnvRays); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvRays, err)
		}
		if n <= 0 || c.ScreenWidth%n != 0 {
			return c, fmt.Errorf("%w: %s=%d must divide screen width %d", ErrInvalid, EnvRays, n, c.ScreenWidth)
		}
		c.StripWidth = c.ScreenWidth / n
	}
	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = n
	}
	if v := os.Getenv(EnvTickRate); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvTickRate, err)
		}
		c.TickRate = n
	}
	return c, nil
}
