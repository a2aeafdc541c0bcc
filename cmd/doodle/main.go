// doodle is a terminal rendition of the classic endless jumper: steer the
// player between bouncing platforms and climb as high as you can.
//
// Usage:
//
//	doodle play     - Play in the local terminal
//	doodle serve    - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doodle",
	Short: "Doodle Jump in your terminal",
	Long: `doodle runs an endless jumper in the terminal: the player bounces
between platforms, the world scrolls down as you climb, and the run ends
when you fall off the bottom.

Available commands:
  play     - Play in the local terminal
  serve    - Start an SSH server for remote play

Examples:
  doodle play
  doodle play --seed 42
  doodle serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
