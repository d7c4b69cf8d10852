package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/bitcube"
	"github.com/SeamusWaldron/bitcube/internal/algs"
)

var algsCmd = &cobra.Command{
	Use:   "algs",
	Short: "List and verify an algorithm library",
	Long: `Load an algorithm library and check that every algorithm has its expected
order. Without --file (or BITCUBE_ALGS_FILE) the built-in library is used.

Library format (YAML):
  algorithms:
    - name: sexy
      notation: R U R' U'
      order: 6`,
	Args: cobra.NoArgs,
	RunE: runAlgs,
}

var algsFile string

func init() {
	rootCmd.AddCommand(algsCmd)
	algsCmd.Flags().StringVarP(&algsFile, "file", "f", "", "Algorithm library file (YAML)")
}

// loadLibrary picks the library from --file, then the environment, then the
// built-in default.
func loadLibrary() (*algs.Library, error) {
	path := algsFile
	if path == "" {
		path = cfg.AlgsFile
	}
	if path == "" {
		logger.Debug("using built-in algorithm library")
		return algs.Default()
	}
	logger.Debug("loading algorithm library", "path", path)
	return algs.Load(path)
}

func runAlgs(cmd *cobra.Command, args []string) error {
	lib, err := loadLibrary()
	if err != nil {
		return err
	}

	results := lib.Verify(bitcube.DefaultOrderLimit)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tORDER\tEXPECTED\tSTATUS\tNOTATION")
	for _, r := range results {
		status := "ok"
		if !r.OK() {
			status = "FAIL"
			logger.Warn("algorithm failed verification", "name", r.Algorithm.Name, "error", r.Err)
		}
		expected := "-"
		if r.Algorithm.Order != 0 {
			expected = fmt.Sprint(r.Algorithm.Order)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", r.Algorithm.Name, r.Order, expected, status, r.Algorithm.Notation)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if n := algs.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d algorithm(s) failed verification", n, len(results))
	}
	return nil
}
