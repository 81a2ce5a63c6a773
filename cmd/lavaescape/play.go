package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lava-escape/internal/core"
	"github.com/vovakirdan/lava-escape/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a climb in the terminal.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump
  P/Esc            - Pause
  R/Enter          - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow lava, gentle acceleration
  normal - Default lava
  hard   - Fast lava, steep acceleration
  fixed  - Lava never speeds up

Examples:
  lavaescape play
  lavaescape play --difficulty easy
  lavaescape play --config ./my-lava.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	runErr := tui.Run(s.game, cfg, s.game.Config().Controls.HoldTicks, s.logger)

	// Close store before potential exit
	if err := s.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
