// main is the entry point of the school-roster console tool.
//
// STARTUP SEQUENCE:
//  1. Load configuration (optional YAML file / environment variables)
//  2. Initialise the logger
//  3. Open the SQLite store (in-memory by default)
//  4. Wire the menu controller to the terminal
//  5. Run the blocking menu loop until the user selects Exit
//
// RUNNING THE TOOL:
//
//	go run ./cmd/roster
//
// or with an explicit config:
//
//	go run ./cmd/roster --config=config/local.yaml
package main

import (
	"log/slog"
	"os"

	"github.com/aanand-mishra/school-roster/internal/config"
	"github.com/aanand-mishra/school-roster/internal/console"
	"github.com/aanand-mishra/school-roster/internal/menu"
	"github.com/aanand-mishra/school-roster/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad falls back to defaults when no config file is named.
	// The name "Must" signals: if this returns, config is guaranteed valid.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Structured logs go to stderr (or cfg.LogPath), never stdout:
	// stdout belongs to the interactive screens and a JSON line in the
	// middle of a menu would corrupt the display.
	log, closeLog := setupLogger(cfg)
	defer closeLog()

	log.Info("starting school-roster",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.StoragePath),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// We store the result as the storage.Storage INTERFACE, not
	// *sqlite.SQLite — the menu only ever sees the interface, so
	// swapping the backend later only requires changing this one line.
	store, err := sqlite.New(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	// ── 4–5. Wire the Controller and Run ──────────────────────────────────
	// Run blocks until the user picks Exit (or stdin closes). The tool
	// is single-threaded and cooperative with the terminal, so there is
	// no server goroutine and no signal dance — when Run returns, the
	// deferred Close calls run and the process ends normally.
	m := menu.New(store, console.NewTerminal(), log)
	m.Run()

	log.Info("school-roster stopped")
}

// setupLogger returns a *slog.Logger configured for the environment,
// plus a close function for the optional log file.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(cfg *config.Config) (*slog.Logger, func()) {
	out := os.Stderr
	closeLog := func() {}

	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			out = f
			closeLog = func() { f.Close() }
		}
		// On failure we fall through to stderr; losing the log file is
		// not worth refusing to start an interactive session.
	}

	switch cfg.Env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		), closeLog
	case "staging":
		return slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		), closeLog
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(out, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		), closeLog
	}
}
