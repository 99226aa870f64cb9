package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/neoncircuit/internal/term"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the animation in the terminal",
	Long: `Draw the themed page and the circuit with box characters in the
current terminal. Needs a true color terminal for exact colors.

Keys: space pauses, r rerolls the theme, u unpins the hue, q quits.`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func init() {
	rootCmd.AddCommand(termCmd)
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lg := setupLogger(cfg)

	rnd, used := newRand(cfg.Seed)
	lg.Info("starting terminal", "seed", used)

	player := startPlayer(cfg, lg)
	if player != nil {
		defer player.Stop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// The screen owns the terminal until Fini.
	lg.SetOutput(io.Discard)
	defer func() {
		screen.Fini()
		lg.SetOutput(os.Stderr)
	}()

	app := term.New(screen, cfg, rnd, player, lg.Logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Run(ctx)
}
