package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"econflow/internal/cli"
	"econflow/internal/config"
	"econflow/internal/term"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cmd := cli.NewCommand("econflow-term", "Economic flow simulation in the terminal", config.New(), func(s cli.Session) error {
		return term.RunTerminal(s.Ctx, term.Options{
			Seed:   s.Options.Seed,
			Mute:   s.Options.Mute,
			Logger: s.Logger,
		})
	}, cli.OwnsTerminal())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
