package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in YAML configuration. Save it as
~/.catch/configs/catch.yaml or ./configs/catch.yaml and edit it, or pass
it to 'catch play --config <path>'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
