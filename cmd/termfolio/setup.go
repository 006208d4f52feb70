package main

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/poi5en/termfolio/internal/config"
	"github.com/poi5en/termfolio/internal/platform/tui"
	"github.com/poi5en/termfolio/internal/storage"
	"github.com/poi5en/termfolio/internal/terminal"
)

// loadConfig reads .env, the config file and the environment, in that
// order; an explicit --db wins over all of them.
func loadConfig(path, dbPath string, getenv func(string) string) (config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(getenv)
	if dbPath != "" {
		cfg.Storage.DBPath = dbPath
	}
	return cfg, nil
}

func mustLoadConfig() config.Config {
	cfg, err := loadConfig(flagConfig, flagDBPath, os.Getenv)
	if err != nil {
		fatal("%v", err)
	}
	return cfg
}

// openStore opens the scores database. Failure is logged and the
// program continues without scores.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, continuing without scores", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// scoreboard avoids handing a typed nil store to the interpreter.
func scoreboard(store *storage.Store) terminal.Scoreboard {
	if store == nil {
		return nil
	}
	return store
}

// screenSize reports the terminal size, falling back to 80x24.
func screenSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func sessionOptions(cfg config.Config, store *storage.Store, logger *log.Logger) tui.Options {
	w, h := screenSize()
	return tui.Options{
		Config:  cfg,
		Store:   store,
		Logger:  logger,
		Opener:  tui.NewBrowserOpener(),
		Player:  os.Getenv("USER"),
		Seed:    flagSeed,
		ScreenW: w,
		ScreenH: h,
	}
}
