package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/HyeRyeongY/svgenius"
	"github.com/HyeRyeongY/svgenius/internal/config"
)

type app struct {
	engine *svgenius.Engine
	log    *slog.Logger
	strict bool
	out    io.Writer
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{out: os.Stdout}
	root := &cobra.Command{
		Use:           "svgenius",
		Short:         "Reorder, normalize, equalize and morph SVG path data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().BoolVar(&a.strict, "strict", false, "fail on any engine error instead of printing the unchanged input")

	root.AddCommand(
		a.anchorsCmd(),
		a.reorderCmd(),
		a.normalizeCmd(),
		a.optimizeCmd(),
		a.equalizeCmd(),
		a.bboxCmd(),
		a.scaleCmd(),
		a.interpolateCmd(),
		a.morphCmd(),
		a.convertCmd(),
		a.exportCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.log)

	opts, err := cfg.EngineOptions()
	if err != nil {
		a.log.Error("load engine options", "error", err)
		return err
	}
	a.engine = svgenius.New(opts).WithLogger(a.log)
	return nil
}

// check reports an engine error. Lenient runs log it and go on with the
// unchanged result the engine returned.
func (a *app) check(op string, err error) error {
	if err == nil {
		return nil
	}
	if a.strict {
		a.log.Error(op, "error", err)
		return err
	}
	a.log.Warn(op, "error", err, "kind", kind(err))
	return nil
}

func kind(err error) string {
	switch {
	case errors.Is(err, svgenius.ErrParseIncomplete):
		return "parse-incomplete"
	case errors.Is(err, svgenius.ErrIndexOutOfRange):
		return "index-out-of-range"
	case errors.Is(err, svgenius.ErrStructuralMismatch):
		return "structural-mismatch"
	case errors.Is(err, svgenius.ErrDegenerateGeometry):
		return "degenerate-geometry"
	}
	return "other"
}

// input returns the path data argument, reading standard input for "-".
func input(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
