package main

import (
	"flag"
	"fmt"

	"github.com/lixenwraith/pong-arena/config"
	"github.com/lixenwraith/pong-arena/core"
)

// options are command-line settings beyond the shared config
type options struct {
	envFile string
	mute    bool
}

// parseFlags overlays explicitly set flags onto cfg
// Env file selection happens first so flags win over both environment and file
func parseFlags(args []string, load func(string) (*config.Config, error)) (*config.Config, options, error) {
	fs := flag.NewFlagSet("pong-arena", flag.ContinueOnError)

	var opt options
	fs.StringVar(&opt.envFile, "env", "", "Path to .env file (default ./.env when present)")
	fs.BoolVar(&opt.mute, "mute", false, "Disable audio")

	mode := fs.String("mode", "", "Match mode: pvp, ai")
	diff := fs.String("difficulty", "", "AI difficulty: medium, hard")
	bottom := fs.String("bottom", "", "Bottom paddle control: keys, mouse, ai")
	top := fs.String("top", "", "Top paddle control: keys, mouse, ai (forced to ai in vs-AI mode)")
	speed := fs.Float64("speed", 0, "PvP ball speed (5-25)")
	seed := fs.Uint64("seed", 0, "Random seed, 0 for time-based")
	debug := fs.Bool("debug", false, "Write logs to logs/pong-arena.log")
	addr := fs.String("addr", "", "Status API listen address, empty disables")
	report := fs.Duration("report", 0, "Metric report interval, 0 disables")

	if err := fs.Parse(args); err != nil {
		return nil, opt, err
	}

	cfg, err := load(opt.envFile)
	if err != nil {
		return nil, opt, err
	}

	var ferr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			if m, ok := core.ParseMode(*mode); ok {
				cfg.Mode = m
			} else {
				ferr = fmt.Errorf("unknown mode %q", *mode)
			}
		case "difficulty":
			if d, ok := core.ParseDifficulty(*diff); ok {
				cfg.Difficulty = d
			} else {
				ferr = fmt.Errorf("unknown difficulty %q", *diff)
			}
		case "bottom":
			if c, ok := core.ParseControlScheme(*bottom); ok {
				cfg.Controls[core.SideBottom] = c
			} else {
				ferr = fmt.Errorf("unknown control %q", *bottom)
			}
		case "top":
			if c, ok := core.ParseControlScheme(*top); ok {
				cfg.Controls[core.SideTop] = c
			} else {
				ferr = fmt.Errorf("unknown control %q", *top)
			}
		case "speed":
			cfg.PvPBallSpeed = *speed
		case "seed":
			cfg.Seed = *seed
		case "debug":
			cfg.Debug = *debug
		case "addr":
			cfg.ServerAddr = *addr
		case "report":
			cfg.ReportInterval = max(*report, 0)
		}
	})
	if ferr != nil {
		return nil, opt, ferr
	}
	return cfg, opt, nil
}
