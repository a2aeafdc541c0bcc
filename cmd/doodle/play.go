package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/platform/tui"
	"github.com/vovakirdan/tui-doodle/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start the game in the current terminal.

Controls:
  Left/Right, A/D  - Steer
  P                - Pause
  R                - Retry (after game over)
  Q/Ctrl+C         - Quit

Examples:
  doodle play
  doodle play --seed 42
  doodle play --config ./my-doodle.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load gameplay config; a broken file degrades to defaults, it never
	// stops the game.
	gameCfg, err := config.LoadDoodle(flagConfig)
	if err != nil {
		log.Warn("could not load config, using defaults", "error", err)
		gameCfg = config.DefaultDoodleConfig()
	}

	// Terminal size for the renderer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	newGame := func() core.Game {
		return doodle.NewWithConfig(gameCfg)
	}

	// One board per sitting; bests survive retries, not process exit.
	board := storage.NewBoard()

	if runErr := tui.Run(newGame, board, cfg, playerName()); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName labels local runs on the leaderboard.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
