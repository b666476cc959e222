package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-cli/internal/config"
)

const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// setupLogging keeps stdout for the board. Development mode logs to stderr,
// otherwise entries only reach the rotating log file, if any.
func setupLogging(cfg *config.Config) error {
	log.SetLevel(cfg.Level())

	if cfg.Dev {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetOutput(io.Discard)
	}

	if cfg.LogFile == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
		Level:      cfg.Level(),
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", cfg.LogFile, err)
	}
	log.AddHook(hook)
	return nil
}
