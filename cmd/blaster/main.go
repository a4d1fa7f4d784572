// blaster is a terminal arcade shooter: a bird dodges bouncing bombs and
// blasts them with charged beams.
//
// Usage:
//
//	blaster play             - Play in the terminal
//	blaster sim              - Run a headless scripted session and print the result
//	blaster config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Override the tick rate from the config
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load a custom config YAML
//	--fire-mode <mode>  - hold or toggle
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blaster/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagFireMode string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blaster",
	Short: "Blaster - a charge-shot arcade game for your terminal",
	Long: `Blaster is a terminal arcade game. Steer the bird, hold fire to charge
a beam and release to shoot. Bigger charges make bigger, faster beams and
score more, but hold too long and the bird explodes.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless scripted session
  config   - Print the effective configuration

Examples:
  blaster play
  blaster play --fire-mode hold
  blaster sim --seed 42 --ticks 1000
  blaster config --config ./my-blaster.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagFireMode, "fire-mode", "", "Fire key handling: hold or toggle (default from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig() (config.BlasterConfig, error) {
	cfg, err := config.LoadBlaster(flagConfig)
	if err != nil {
		return config.BlasterConfig{}, err
	}

	if flagFPS > 0 {
		cfg.Arena.TickRate = flagFPS
	}
	if flagFireMode != "" {
		cfg.Input.FireMode = config.FireMode(flagFireMode)
	}

	if err := cfg.Validate(); err != nil {
		return config.BlasterConfig{}, err
	}
	return cfg, nil
}
