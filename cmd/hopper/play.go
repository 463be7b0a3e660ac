package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
	"github.com/vovakirdan/tui-hopper/internal/platform/tui"
	"github.com/vovakirdan/tui-hopper/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a variant",
	Long: `Start playing Sky Hopper. The game defaults to "hopper".

Controls:
  Left/A/H, Right/D/L  - Steer
  Enter/Space          - Start
  P/Esc                - Pause
  R                    - Restart (after game over)
  ?                    - Show all keys
  Q/Ctrl+C             - Quit

Examples:
  hopper play
  hopper play hopper_easy
  hopper play --seed 42 --config ./my-hopper.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hopper list' to see available games.")
		os.Exit(1)
	}

	// A broken --config is reported before the terminal is taken over.
	_, source, err := config.LoadHopper(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	err = withLogFile(flagLogFile, flagLogLevel, func(logger *log.Logger) error {
		logger.Info("config loaded", "source", source)
		if runErr := tui.Run(game, cfg, logger); runErr != nil {
			logger.Error("game loop failed", "error", runErr)
			return fmt.Errorf("running game: %w", runErr)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
