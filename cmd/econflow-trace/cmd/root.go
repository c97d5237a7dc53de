package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"econflow/internal/config"
	"econflow/internal/logs"
	"econflow/internal/trace"
)

const (
	keyFrames  = "frames"
	keyDelay   = "delay"
	keyAttacks = "attacks"
	keyFormat  = "format"
	keyNoColor = "no-color"
)

var v = config.New()

var rootCmd = &cobra.Command{
	Use:   "econflow-trace",
	Short: "Record an econflow session headless",
	Long: `econflow-trace plays the economy narrative without a window, advancing
through each stage like a viewer pressing SPACE, and prints the resulting
timeline of stage transitions and collapses.`,
	SilenceUsage: true,
	RunE:         runTrace,
}

func init() {
	def := trace.DefaultOptions()

	f := rootCmd.Flags()
	f.String(config.KeyConfig, "", "config file (YAML)")
	f.Uint64(config.KeySeed, config.DefaultSeed, "random seed")
	f.String(config.KeyLogLevel, "info", "log level (debug, info, warn, error)")
	f.Bool(config.KeyJournal, false, "also log to the systemd journal")
	f.Int(keyFrames, def.MaxFrames, "maximum frames to simulate")
	f.Int(keyDelay, def.AdvanceDelay, "frames to wait in each stage before advancing")
	f.Bool(keyAttacks, false, "include individual attack events")
	f.StringP(keyFormat, "o", "text", "output format (text, yaml)")
	f.Bool(keyNoColor, false, "disable colored output")

	for _, name := range []string{
		config.KeyConfig, config.KeySeed, config.KeyLogLevel, config.KeyJournal,
		keyFrames, keyDelay, keyAttacks, keyFormat, keyNoColor,
	} {
		_ = v.BindPFlag(name, f.Lookup(name))
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func runTrace(cmd *cobra.Command, _ []string) error {
	opts, err := config.Load(v)
	if err != nil {
		return err
	}

	format := v.GetString(keyFormat)
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q", format)
	}

	logger := logs.New(logs.Options{
		Writer:  os.Stderr,
		Level:   logs.ParseLevel(opts.LogLevel),
		Journal: opts.Journal,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tl, err := trace.Record(ctx, traceOptions(v, opts.Seed), logger)
	if err != nil {
		return fmt.Errorf("record: %w", err)
	}

	out := cmd.OutOrStdout()
	if format == "yaml" {
		return trace.WriteYAML(out, tl)
	}
	return trace.WriteText(out, tl, !v.GetBool(keyNoColor))
}

func traceOptions(v *viper.Viper, seed uint64) trace.Options {
	return trace.Options{
		Seed:         seed,
		AdvanceDelay: v.GetInt(keyDelay),
		MaxFrames:    v.GetInt(keyFrames),
		Attacks:      v.GetBool(keyAttacks),
	}
}
