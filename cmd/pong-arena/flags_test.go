package main

import (
	"testing"
	"time"

	"github.com/lixenwraith/pong-arena/config"
	"github.com/lixenwraith/pong-arena/core"
)

func defaults(string) (*config.Config, error) { return config.Default(), nil }

func TestParseFlagsOverridesConfig(t *testing.T) {
	cfg, opt, err := parseFlags([]string{
		"-mode", "pvp", "-difficulty", "hard", "-bottom", "mouse", "-top", "keys",
		"-speed", "20", "-seed", "9", "-addr", ":8089", "-report", "2s", "-mute",
	}, defaults)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}

	if cfg.Mode != core.ModePvP || cfg.Difficulty != core.DifficultyHard {
		t.Errorf("Expected pvp hard, got %s %s", cfg.Mode, cfg.Difficulty)
	}
	if cfg.Controls != [2]core.ControlScheme{core.ControlMouse, core.ControlKeys} {
		t.Errorf("Unexpected controls %v", cfg.Controls)
	}
	if cfg.PvPBallSpeed != 20 || cfg.Seed != 9 || cfg.ServerAddr != ":8089" || cfg.ReportInterval != 2*time.Second {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if !opt.mute {
		t.Error("Expected mute option")
	}
}

func TestParseFlagsKeepsUnsetValues(t *testing.T) {
	cfg, _, err := parseFlags(nil, defaults)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if *cfg != *config.Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestParseFlagsRejectsUnknownValues(t *testing.T) {
	if _, _, err := parseFlags([]string{"-mode", "coop"}, defaults); err == nil {
		t.Error("Expected error for unknown mode")
	}
	if _, _, err := parseFlags([]string{"-top", "joystick"}, defaults); err == nil {
		t.Error("Expected error for unknown control")
	}
}

func TestParseFlagsPassesEnvFile(t *testing.T) {
	var got string
	load := func(path string) (*config.Config, error) {
		got = path
		return config.Default(), nil
	}
	if _, _, err := parseFlags([]string{"-env", "custom.env"}, load); err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if got != "custom.env" {
		t.Errorf("Expected custom.env, got %q", got)
	}
}
