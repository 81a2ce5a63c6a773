package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lava-escape/internal/core"
	"github.com/vovakirdan/lava-escape/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a climb in a resizable desktop window.

Controls:
  A/D, Left/Right  - Run (hold)
  Space/W/Up       - Jump
  P/Esc            - Pause
  R/Enter          - Restart (after game over)
  Q                - Quit

Examples:
  lavaescape window
  lavaescape window --width 1024 --height 768`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", window.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", window.DefaultHeight, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	runErr := window.Run(s.game, cfg, s.logger)

	if err := s.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
