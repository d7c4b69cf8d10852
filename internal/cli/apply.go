package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/bitcube"
)

var applyCmd = &cobra.Command{
	Use:   "apply <notation>",
	Short: "Apply a turn sequence to a solved cube",
	Long: `Apply a turn sequence to a solved cube and print the resulting net.

Examples:
  bitcube apply "R U R' U'"
  bitcube apply R U2 F'
  bitcube apply --inverse "R U R' U'"    # apply U R U' R'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var applyInverse bool

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVarP(&applyInverse, "inverse", "i", false, "Apply the inverse of the sequence")
}

func runApply(cmd *cobra.Command, args []string) error {
	seq, err := bitcube.ParseRotations(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if applyInverse {
		seq = bitcube.Invert(seq)
	}
	logger.Debug("applying sequence", "turns", len(seq), "notation", bitcube.FormatRotations(seq))

	c := bitcube.NewCube().RotateMany(seq)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, newRenderer(out).Net(c))
	fmt.Fprintf(out, "Turns: %d\n", len(seq))
	fmt.Fprintf(out, "Solved: %v\n", c.IsSolved())
	return nil
}
