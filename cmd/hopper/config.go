package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hopper/internal/config"
)

var flagDifficulty string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way the game does and prints it as
YAML, with the difficulty preset applied. The output is a valid config file.

Examples:
  hopper config > ~/.hopper/configs/hopper.yaml
  hopper config --difficulty hard
  hopper config --config ./my-hopper.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source, err := effectiveConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}

// effectiveConfig loads the config from path and applies a difficulty preset.
func effectiveConfig(path, difficulty string) (config.HopperConfig, string, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.HopperConfig{}, "", err
	}

	cfg, source, err := config.LoadHopper(path)
	if err != nil {
		return cfg, source, err
	}

	config.ApplyHopperPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, source, nil
}
