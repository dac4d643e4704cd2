package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play with the Bubble Tea front end",
	Long: `Play the same game through Bubble Tea with coloured glyphs.

Controls:
  W/A/S/D     - Steer (or the keys set in the config)
  Esc/Ctrl+C  - Quit

Examples:
  snake tui
  snake tui --seed 7`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(cfg, logger)
}
