package cli

import (
	"github.com/spf13/cobra"

	"github.com/iburimskiy/neoncircuit/internal/game"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the desktop window",
	Long: `Open a window with the themed page and the circuit animation.

Keys: space pauses, r rerolls the theme, c picks a primary hue in the
system color dialog, u unpins it, esc or q quits.`,
	Args: cobra.NoArgs,
	RunE: runDesktop,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDesktop(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lg := setupLogger(cfg)

	rnd, used := newRand(cfg.Seed)
	lg.Info("starting window", "seed", used, "size", [2]int{cfg.Window.Width, cfg.Window.Height})

	player := startPlayer(cfg, lg)
	if player != nil {
		defer player.Stop()
	}

	return game.New(cfg, rnd, player, lg.Logger).Run()
}
