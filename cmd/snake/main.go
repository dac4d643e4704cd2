// snake is a real-time snake game for the terminal.
//
// Usage:
//
//	snake                  - Play in the current terminal
//	snake tui              - Play with the Bubble Tea front end
//	snake serve            - Start SSH server for remote play
//	snake config           - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Custom config YAML (default: ~/.snake/snake.yaml)
//	--seed <value>  - Set RNG seed for reproducible food placement
//	--log <path>    - Write logs to a file
//	--debug         - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/term"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake around a walled field",
	Long: `Snake is a real-time terminal game. Steer the snake with W/A/S/D,
eat the food (X) to grow and avoid the walls (H) and your own body.
The game ends when the snake dies.

Available commands:
  tui      - Play with the Bubble Tea front end
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake --seed 42
  snake tui --config ./my-snake.yaml
  snake serve --ssh :2222
  snake --log snake.log --debug`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runTerm,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, then time based)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game config and applies flag overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, nil
}

func runTerm(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	return term.Run(cfg, logger)
}
