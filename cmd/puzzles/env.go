package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/platform/tui"
	"github.com/vovakirdan/tui-puzzles/internal/storage"
)

// env bundles what every command needs: config, logger and scores.
type env struct {
	cfg     config.Config
	logger  *log.Logger
	store   *storage.Store
	logFile *os.File
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "puzzles",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// setup loads config and opens the score store. When interactive is
// set the logger writes to --log-file so it does not garble the screen.
// Exits the process on config errors, as every command needs a config.
func setup(interactive bool) *env {
	e := &env{logger: newLogger(os.Stderr)}

	if interactive {
		if f, err := openLogFile(flagLogFile); err != nil {
			e.logger.Warn("logging disabled", "file", flagLogFile, "err", err)
			e.logger = newLogger(io.Discard)
		} else {
			e.logFile = f
			e.logger = newLogger(f)
		}
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	e.cfg = cfg
	e.logger.Debug("config loaded", "source", source)

	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = cfg.Scores.Path
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		// Continue without storage - puzzles still work
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		e.logger.Debug("scores unavailable", "db", dbPath, "err", err)
	} else {
		e.store = store
	}

	return e
}

// scoreStore returns the store as an interface, nil when unavailable.
func (e *env) scoreStore() tui.ScoreStore {
	if e.store == nil {
		return nil
	}
	return e.store
}

// close releases the store and the log file.
func (e *env) close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.Warn("cannot close scores database", "err", err)
		}
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}

// runtimeConfig reads the terminal size and resolves the seed.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	rt.Seed = flagSeed
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt
}

// openLogFile opens path for appending, expanding a leading ~.
func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
