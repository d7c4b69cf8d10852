package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/bitcube"
)

var orderCmd = &cobra.Command{
	Use:   "order <notation>",
	Short: "Count repetitions until a sequence returns to solved",
	Long: `Print the order of a turn sequence: how many times it must be applied to a
solved cube before the cube is solved again.

Examples:
  bitcube order "R U R' U'"     # 6
  bitcube order R U             # 105`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOrder,
}

var orderLimit int

func init() {
	rootCmd.AddCommand(orderCmd)
	orderCmd.Flags().IntVar(&orderLimit, "limit", bitcube.DefaultOrderLimit, "Give up after this many repetitions")
}

func runOrder(cmd *cobra.Command, args []string) error {
	seq, err := bitcube.ParseRotations(strings.Join(args, " "))
	if err != nil {
		return err
	}

	n, err := bitcube.Order(seq, orderLimit)
	if err != nil {
		return err
	}
	logger.Debug("order computed", "notation", bitcube.FormatRotations(seq), "order", n)

	fmt.Fprintf(cmd.OutOrStdout(), "Order: %d\n", n)
	return nil
}
