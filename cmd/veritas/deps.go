package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ersonp/veritas/internal/application/handlers"
	"github.com/ersonp/veritas/internal/domain/ports"
	"github.com/ersonp/veritas/internal/domain/schema"
	"github.com/ersonp/veritas/internal/domain/services"
	"github.com/ersonp/veritas/internal/infrastructure/config"
	"github.com/ersonp/veritas/internal/infrastructure/parsers"
	"github.com/ersonp/veritas/internal/infrastructure/snapshotdb/sqlite"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config  *config.Config
	Logger  *slog.Logger
	Handler *handlers.ValidationHandler
}

// withDeps loads config, builds the validation stack, and calls fn.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg.Log)

	registry := schema.Default()
	adjuster := services.NewConfidenceAdjuster(penaltiesFromConfig(cfg))
	validator := services.NewRelationshipValidator(registry, adjuster)
	reporter := services.NewBatchValidationReporter(validator, registry, cfg.Validation.Workers, logger)

	deps := &Deps{
		Config:  cfg,
		Logger:  logger,
		Handler: handlers.NewValidationHandler(validator, reporter),
	}

	return fn(deps)
}

// penaltiesFromConfig merges configured penalty overrides over the defaults.
func penaltiesFromConfig(cfg *config.Config) services.PenaltyFactors {
	penalties := services.DefaultPenalties()
	for code, factor := range cfg.Validation.Penalties {
		penalties[code] = factor
	}
	return penalties
}

// newLogger builds the process logger from config, honoring --verbose.
func newLogger(cfg config.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if globalVerbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// openSource opens a snapshot by file extension: SQLite databases produced
// by the extractor, or JSON/CSV exports.
func openSource(path string) (ports.SnapshotSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return sqlite.NewSource(path)
	default:
		return parsers.OpenFile(path)
	}
}
