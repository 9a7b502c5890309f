package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/klondike/internal/config"
	"github.com/arcanaland/klondike/internal/render"
	"github.com/arcanaland/klondike/internal/table"
)

// session bundles what a command needs to run a game
type session struct {
	table    *table.Table
	renderer *render.Renderer
	logger   *zap.Logger
	out      io.Writer
}

// newSession merges the config file with command-line flags and deals a game
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if cmd.Flags().Changed("seed") {
		if cfg.Seed, err = cmd.Flags().GetInt64("seed"); err != nil {
			return nil, fmt.Errorf("error reading --seed: %w", err)
		}
	}
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return nil, fmt.Errorf("error reading --no-color: %w", err)
	}
	if noColor {
		cfg.Color = false
	}
	if cmd.Flags().Changed("log-file") {
		if cfg.LogFile, err = cmd.Flags().GetString("log-file"); err != nil {
			return nil, fmt.Errorf("error reading --log-file: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); !ok || !render.IsTerminal(f) {
		cfg.Color = false
	}
	if !cfg.Color {
		pterm.DisableColor()
	}

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		return nil, err
	}

	r, err := render.New(out, render.Options{
		Color:    cfg.Color,
		Symbols:  cfg.SuitSymbols,
		CardBack: cfg.CardBack,
	})
	if err != nil {
		return nil, err
	}

	return &session{
		table:    table.New(table.WithSeed(cfg.Seed), table.WithLogger(logger)),
		renderer: r,
		logger:   logger,
		out:      out,
	}, nil
}

// newLogger returns a JSON file logger for path, or a no-op logger if path is empty
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	if path == "default" {
		path = config.GetDefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creating log directory: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	return logger, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// draw renders the table and its status line
func (s *session) draw() error {
	snap := s.table.Snapshot()
	if err := s.renderer.Render(snap); err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	switch snap.Status {
	case table.StatusWelcome:
		pterm.Info.WithWriter(s.out).Println(snap.Status)
	case table.StatusWon:
		pterm.Success.WithWriter(s.out).Println(snap.Status)
	default:
		return s.renderer.Status(snap.Status)
	}
	return nil
}
