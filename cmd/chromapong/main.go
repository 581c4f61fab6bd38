// chromapong is a single-player paddle-and-ball game in which every bounce,
// return and miss is played as a note from a 48-sample chromatic bank.
//
// Usage:
//
//	chromapong play          - Play in the terminal
//	chromapong window        - Play in a desktop window
//	chromapong notes         - Show the note bank, or audition a progression
//	chromapong assets        - List files in the assets directory
//	chromapong config        - Print the effective configuration
//	chromapong version       - Print the build version
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.chromapong/config.yaml, ./configs/chromapong.yaml)
//	--fps <rate>       - Tick rate (default from config: 120)
//	--seed <value>     - RNG seed for reproducible note choices
//	--assets <dir>     - Note sample directory
//	--mute             - Load samples but play nothing
//	--blocking         - Hold the frame loop between progression notes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagAssets   string
	flagMute     bool
	flagBlocking bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chromapong",
	Short: "ChromaPong - a paddle game you can hear",
	Long: `ChromaPong is a single-player paddle-and-ball game. Wall bounces,
returns and misses each play a note from a chromatic sample bank; a rising
C major arpeggio opens every round and the same arpeggio falls when the
ball gets past you.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  notes    - Show the note bank or audition a progression
  assets   - List files in the assets directory
  config   - Print the effective configuration
  version  - Print the build version

Examples:
  chromapong play
  chromapong window --fps 60
  chromapong play --seed 42 --mute
  chromapong notes --play major`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else time based)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Note sample directory")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio output")
	rootCmd.PersistentFlags().BoolVar(&flagBlocking, "blocking", false, "Block the frame loop between progression notes")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while playing in the terminal")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
