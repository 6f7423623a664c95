// swarm is a terminal shoot-em-up with waves, bosses and an in-run shop.
//
// Usage:
//
//	swarm list               - List available modes
//	swarm play [mode]        - Play a mode (default: swarm)
//	swarm menu               - Start menu to pick a mode interactively
//	swarm serve              - Start SSH server for remote play
//	swarm scores <mode>      - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.swarm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its modes
	_ "github.com/vovakirdan/tui-swarm/internal/games/swarm"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "swarm",
	Short: "Swarm Strike - wave shooter in your terminal",
	Long: `Swarm Strike is a terminal shoot-em-up. Hold the line against
descending hostiles across thirty waves, fight bosses, collect pickups
and spend gold in the shop between firefights.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  swarm list
  swarm play
  swarm play swarm_endless
  swarm serve --ssh :2222
  swarm scores swarm`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.swarm/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
