// Package cli implements the command-line interface for bitcube.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/bitcube/internal/config"
	"github.com/SeamusWaldron/bitcube/internal/logging"
	"github.com/SeamusWaldron/bitcube/internal/render"
)

const version = "0.1.0"

var (
	// Global flags
	verbose bool
	noColor bool

	// Set by setup before any command runs.
	cfg    config.Config
	logger = logging.NewNop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "bitcube",
	Short: "Bit-packed Rubik's cube simulator",
	Long: `bitcube - apply turn sequences to a simulated 3x3 Rubik's cube.

Sequences use standard notation: U L F R B D for clockwise quarter turns,
a trailing ' for counter-clockwise, and 2 for half turns.

Environment:
  BITCUBE_COLOR            enable colored output (default true)
  BITCUBE_LOG_LEVEL        debug, info, warn or error (default info)
  BITCUBE_SCRAMBLE_LENGTH  default scramble length (default 25)
  BITCUBE_ALGS_FILE        algorithm library used by 'algs'`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// setup loads the environment config and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded

	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
	return nil
}

// newRenderer returns a renderer for w honoring --no-color and BITCUBE_COLOR.
// The color profile is detected from w, so piped output stays plain.
func newRenderer(w io.Writer) *render.Renderer {
	return render.New(
		render.WithColor(cfg.Color && !noColor),
		render.WithRenderer(lipgloss.NewRenderer(w)),
	)
}
