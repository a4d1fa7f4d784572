package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blaster/internal/config"
)

var flagShowDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

Config files are searched in this order, and the first one found is
layered over the built-in defaults:
  --config <path>
  ~/.arcade/configs/blaster.yaml
  ./configs/blaster.yaml

Examples:
  blaster config
  blaster config --default > ~/.arcade/configs/blaster.yaml
  blaster config --config ./my-blaster.yaml --fps 30`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default config instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagShowDefault {
		fmt.Print(string(config.GetDefaultYAML()))
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
