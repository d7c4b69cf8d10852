package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/bitcube"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random sequence of quarter turns and print the scrambled cube.

A turn is never immediately followed by its own inverse. Use --seed to
reproduce a scramble.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

var (
	scrambleLength int
	scrambleSeed   uint64
	scrambleQuiet  bool
)

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "Number of quarter turns (defaults to BITCUBE_SCRAMBLE_LENGTH)")
	scrambleCmd.Flags().Uint64VarP(&scrambleSeed, "seed", "s", 0, "Random seed for a reproducible scramble")
	scrambleCmd.Flags().BoolVarP(&scrambleQuiet, "quiet", "q", false, "Print only the notation")
}

// scrambleOptions maps command flags to scramble options.
// An unset --length falls back to the environment config.
func scrambleOptions(cmd *cobra.Command, length int, seed uint64) []bitcube.Option {
	if !cmd.Flags().Changed("length") {
		length = cfg.ScrambleLength
	}
	opts := []bitcube.Option{bitcube.WithLength(length)}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, bitcube.WithSeed(seed))
		logger.Debug("seeded scramble", "seed", seed)
	}
	return opts
}

func runScramble(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("length") && scrambleLength < 0 {
		return fmt.Errorf("--length must not be negative, got %d", scrambleLength)
	}

	seq := bitcube.Scramble(scrambleOptions(cmd, scrambleLength, scrambleSeed)...)

	out := cmd.OutOrStdout()
	if scrambleQuiet {
		fmt.Fprintln(out, bitcube.FormatRotations(seq))
		return nil
	}

	fmt.Fprintf(out, "Scramble: %s\n\n", bitcube.FormatRotations(seq))
	fmt.Fprint(out, newRenderer(out).Net(bitcube.NewCube().RotateMany(seq)))
	return nil
}
