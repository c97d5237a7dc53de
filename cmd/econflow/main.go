package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"

	"econflow/internal/cli"
	"econflow/internal/config"
	"econflow/internal/game"
)

// GLFW must run on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cmd := cli.NewCommand("econflow", "Economic flow simulation", config.New(), func(s cli.Session) error {
		return game.RunDesktop(s.Ctx, game.Options{
			Seed:   s.Options.Seed,
			Mute:   s.Options.Mute,
			Logger: s.Logger,
		})
	})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
