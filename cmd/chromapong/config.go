package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromapong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after the config file search and command-line
overrides, as YAML. Redirect it to ~/.chromapong/config.yaml to start a
custom config.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
