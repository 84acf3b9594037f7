// Package config resolves process settings from the environment and an optional .env file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
)

// DefaultEnvFile is read when Load is given no explicit file
const DefaultEnvFile = ".env"

// Config holds session selections and collaborator settings
type Config struct {
	Mode         core.Mode
	Difficulty   core.Difficulty
	Controls     [core.SideCount]core.ControlScheme
	PvPBallSpeed float64

	// Seed zero selects a time-based seed
	Seed uint64

	Debug bool

	// ServerAddr enables the status API when non-empty
	ServerAddr string

	// ReportInterval schedules periodic metric logging, zero disables
	ReportInterval time.Duration
}

// Default returns vs-AI Medium with keyboard control of the bottom paddle
func Default() *Config {
	return &Config{
		Mode:           core.ModeVsAI,
		Difficulty:     core.DifficultyMedium,
		Controls:       [core.SideCount]core.ControlScheme{core.ControlKeys, core.ControlAI},
		PvPBallSpeed:   constant.BallSpeedPvPDefault,
		ReportInterval: 30 * time.Second,
	}
}

// Load applies PONG_ARENA_* variables over defaults
// Process environment wins over envFile entries; a missing default file is not an error
// Unparseable values keep their defaults
func Load(envFile string) (*Config, error) {
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}

	file, err := godotenv.Read(envFile)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", envFile, err)
		}
	}

	get := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return file[key]
	}

	cfg := Default()

	if v := get("PONG_ARENA_MODE"); v != "" {
		if m, ok := core.ParseMode(v); ok {
			cfg.Mode = m
		}
	}
	if v := get("PONG_ARENA_DIFFICULTY"); v != "" {
		if d, ok := core.ParseDifficulty(v); ok {
			cfg.Difficulty = d
		}
	}
	if v := get("PONG_ARENA_BOTTOM_CONTROL"); v != "" {
		if c, ok := core.ParseControlScheme(v); ok {
			cfg.Controls[core.SideBottom] = c
		}
	}
	if v := get("PONG_ARENA_TOP_CONTROL"); v != "" {
		if c, ok := core.ParseControlScheme(v); ok {
			cfg.Controls[core.SideTop] = c
		}
	}
	if v := get("PONG_ARENA_BALL_SPEED"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			cfg.PvPBallSpeed = f
		}
	}
	if v := get("PONG_ARENA_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := get("PONG_ARENA_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
	if v := get("PONG_ARENA_SERVER_ADDR"); v != "" {
		cfg.ServerAddr = v
	}
	if v := get("PONG_ARENA_REPORT_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			cfg.ReportInterval = d
		}
	}

	return cfg, nil
}
