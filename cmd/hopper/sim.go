package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hopper/internal/core"
	"github.com/vovakirdan/tui-hopper/internal/games/hopper"
	"github.com/vovakirdan/tui-hopper/internal/registry"
)

var (
	flagTicks  int
	flagWidth  int
	flagHeight int
)

var simCmd = &cobra.Command{
	Use:   "sim [game]",
	Short: "Run a headless session with the autopilot",
	Long: `Runs a session without a terminal. The autopilot steers toward the
next platform; the run stops at game over or after --ticks ticks, and the
result is logged to stderr. The same seed always gives the same result.

Examples:
  hopper sim --seed 42
  hopper sim hopper_hard --ticks 20000 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum number of ticks to simulate")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Playfield width in cells")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Playfield height in cells")
}

// simResult summarizes a headless run.
type simResult struct {
	Score    int
	Distance float64
	Ticks    int
	Bounces  int
	Ended    bool
}

func runSim(cmd *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rg, err := registry.Create(gameID)
	if err != nil {
		logger.Error("cannot create game", "error", err)
		os.Exit(1)
	}
	game, ok := rg.(*hopper.Game)
	if !ok {
		logger.Error("game does not support headless runs", "game", gameID)
		os.Exit(1)
	}

	rc := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	res := simulate(game, rc, flagTicks, logger)

	logger.Info("simulation finished",
		"game", gameID,
		"seed", rc.Seed,
		"score", res.Score,
		"distance", fmt.Sprintf("%.1f", res.Distance),
		"ticks", res.Ticks,
		"bounces", res.Bounces,
		"game_over", res.Ended,
	)
}

// simulate starts a session and lets the autopilot play it for at most
// maxTicks ticks.
func simulate(game *hopper.Game, rc core.RuntimeConfig, maxTicks int, logger *log.Logger) simResult {
	game.Reset(rc)
	game.Step(core.InputOf(core.ActionStart))
	s := game.Session()

	var res simResult
	for s.Phase == hopper.PhaseRunning && s.Ticks < maxTicks {
		tr := s.Tick(hopper.Autopilot(s))
		if tr.Bounced {
			res.Bounces++
			logger.Debug("bounce", "tick", s.Ticks, "score", s.Score, "platforms", s.Field.Len())
		}
		if tr.Ended {
			logger.Debug("fell off screen", "tick", s.Ticks)
		}
	}

	st := game.State()
	res.Score = st.Score
	res.Distance = st.Distance
	res.Ticks = st.Ticks
	res.Ended = st.GameOver
	return res
}
