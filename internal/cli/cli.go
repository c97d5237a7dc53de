// Package cli holds the flag and logging setup shared by the interactive
// front-ends.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"econflow/internal/config"
	"econflow/internal/logs"
)

// Session is what a front-end needs to start: resolved options, a logger
// tagged with the run id and a context cancelled on SIGINT/SIGTERM.
type Session struct {
	Options config.Options
	Logger  *slog.Logger
	Ctx     context.Context
}

// Run is a front-end entry point.
type Run func(s Session) error

type settings struct {
	ownsTerminal bool
}

type Option func(*settings)

// OwnsTerminal keeps the text log off stderr, for front-ends that draw on
// the terminal. Logs then go to --log-file and the journal only.
func OwnsTerminal() Option {
	return func(s *settings) { s.ownsTerminal = true }
}

// NewCommand builds a root command with the common flags bound to v.
func NewCommand(use, short string, v *viper.Viper, run Run, options ...Option) *cobra.Command {
	var set settings
	for _, o := range options {
		o(&set)
	}

	cmd := &cobra.Command{
		Use:          use,
		Short:        short,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := config.Load(v)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			id := logs.NewRunID()
			ctx = logs.WithRun(ctx, id)
			var w io.Writer = cmd.ErrOrStderr()
			if set.ownsTerminal {
				w = nil
			}
			if opts.LogFile != "" {
				f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				w = f
			}
			logger := logs.New(logs.Options{
				Writer:  w,
				Level:   logs.ParseLevel(opts.LogLevel),
				Journal: opts.Journal,
			})

			if err := run(Session{Options: opts, Logger: logger, Ctx: ctx}); err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.String(config.KeyConfig, "", "config file (YAML)")
	f.Uint64(config.KeySeed, config.DefaultSeed, "random seed for particle jitter and machine layout")
	f.Bool(config.KeyMute, false, "disable sound")
	f.String(config.KeyLogLevel, "info", "log level (debug, info, warn, error)")
	f.Bool(config.KeyJournal, false, "also log to the systemd journal")
	f.String(config.KeyLogFile, "", "write the text log to this file")
	for _, name := range []string{config.KeyConfig, config.KeySeed, config.KeyMute, config.KeyLogLevel, config.KeyJournal, config.KeyLogFile} {
		_ = v.BindPFlag(name, f.Lookup(name))
	}
	return cmd
}
