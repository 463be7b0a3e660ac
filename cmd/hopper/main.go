// hopper is Sky Hopper, a vertical platform jumper for the terminal.
//
// Usage:
//
//	hopper                   - Play the normal variant
//	hopper play [game]       - Play a variant (hopper, hopper_easy, hopper_hard)
//	hopper list              - List available variants
//	hopper sim               - Run a headless autopilot session
//	hopper config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config YAML
//	--log-file <path>    - Log destination while the game owns the terminal
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hopper/internal/games/hopper"
)

const defaultGameID = "hopper"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hopper",
	Short: "Sky Hopper - bounce your way up in the terminal",
	Long: `Sky Hopper is a vertical platform jumper. Steer left and right while
the hopper bounces off platforms; the screen scrolls as you climb and the
run ends when you fall off the bottom.

Available commands:
  play     - Play a variant (default when no command is given)
  list     - Show all variants
  sim      - Run a headless session driven by the autopilot
  config   - Print the effective configuration

Examples:
  hopper
  hopper play hopper_hard
  hopper sim --ticks 5000 --seed 42
  hopper config --difficulty easy`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		hopper.SetConfigPath(flagConfig)
	},
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.hopper/hopper.log", "Log file used while playing")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
