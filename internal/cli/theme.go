package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/neoncircuit/internal/config"
	"github.com/iburimskiy/neoncircuit/internal/report"
	"github.com/iburimskiy/neoncircuit/internal/theme"
)

var (
	themeSections int
	themeHue      int
	themeCount    int
	themeFormat   string
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print generated themes",
	Long: `Generate themes and print them with their contrast checks.

The text format draws a report box in the theme's own colors. yaml and
json print the raw schemes for use elsewhere.`,
	Example: `  neoncircuit theme --seed 42
  neoncircuit theme --hue 200 --count 3
  neoncircuit theme --format yaml --sections 12`,
	Args: cobra.NoArgs,
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.Flags().IntVar(&themeSections, "sections", 0, "section colors per theme (default from config)")
	themeCmd.Flags().IntVar(&themeHue, "hue", config.Unpinned, "pin the primary hue in [0, 359]")
	themeCmd.Flags().IntVarP(&themeCount, "count", "n", 1, "number of themes")
	themeCmd.Flags().StringVarP(&themeFormat, "format", "f", "text", "output format: text, yaml, json")
}

func runTheme(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lg := setupLogger(cfg)

	sections := cfg.Theme.Sections
	if themeSections > 0 {
		sections = themeSections
	}
	hue := cfg.Theme.PinnedHue
	if cmd.Flags().Changed("hue") {
		hue = themeHue
	}
	if hue < config.Unpinned || hue > 359 {
		return fmt.Errorf("hue must be in [0, 359], got %d", hue)
	}
	if themeCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", themeCount)
	}

	rnd, used := newRand(cfg.Seed)
	lg.Debug("generating themes", "seed", used, "count", themeCount, "sections", sections)

	gen := theme.NewGenerator(rnd, theme.WithLogger(lg.Component("theme")))
	if hue != config.Unpinned {
		gen.PinPrimaryHue(hue)
	}
	schemes := make([]theme.Scheme, themeCount)
	for i := range schemes {
		schemes[i] = gen.Scheme(sections)
	}
	return writeSchemes(cmd.OutOrStdout(), schemes, themeFormat)
}

func writeSchemes(w io.Writer, schemes []theme.Scheme, format string) error {
	switch format {
	case "text":
		for i, s := range schemes {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, report.Render(s))
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(schemes); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(schemes); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q: must be text, yaml or json", format)
	}
}
