package config

import (
	"flag"
	"fmt"

	"github.com/peterbourgon/ff/v3"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

const EnvPrefix = "MINESWEEPER"

type Config struct {
	Width    int
	Height   int
	Mines    int // negative means ask the player
	Seed     uint64
	LogFile  string
	LogLevel string
	Dev      bool
}

// Parse reads flags from args, then MINESWEEPER_* environment variables,
// then the optional -config file. Earlier sources win.
func Parse(args []string) (*Config, error) {
	var (
		cfg = &Config{}
		fs  = flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	)
	fs.IntVar(&cfg.Width, "width", mines.DefaultWidth, "number of columns")
	fs.IntVar(&cfg.Height, "height", mines.DefaultHeight, "number of rows")
	fs.IntVar(&cfg.Mines, "mines", -1, "number of mines (negative to ask)")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 picks one)")
	fs.StringVar(&cfg.LogFile, "log-file", "", "rotating log file path")
	fs.StringVar(&cfg.LogLevel, "log-level", logrus.InfoLevel.String(), "log level")
	fs.BoolVar(&cfg.Dev, "development", false, "debug logging to stderr")
	fs.String("config", "", "config file path")

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix(EnvPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithAllowMissingConfigFile(true),
	)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.GameParams(max(c.Mines, 0)).Validate(); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

func (c Config) GameParams(mineCount int) mines.GameParams {
	return mines.GameParams{
		Width:     c.Width,
		Height:    c.Height,
		MineCount: mineCount,
	}
}

// Level is the configured level, raised to debug in development.
func (c Config) Level() logrus.Level {
	if c.Dev {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"width":       c.Width,
		"height":      c.Height,
		"mines":       c.Mines,
		"seed":        c.Seed,
		"log_file":    c.LogFile,
		"log_level":   c.Level().String(),
		"development": c.Dev,
	}
}
