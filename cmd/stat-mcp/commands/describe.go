package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"stat-mcp/internal/samples"
	"stat-mcp/internal/stats"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var describeCmd = &cobra.Command{
	Use:   "describe <file>...",
	Short: "Compute summary statistics for sample files",
	Long: `Reads each file (one observation per line, blank lines and '#' comments
skipped) and prints a JSON summary per file: count, mean, sample standard
deviation, lower-middle median and L2 norm. Statistics that are undefined
for a file's sample are printed as null.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries := make([]stats.Summary, len(args))

		// Files are independent; fan out across them. Each statistic
		// itself stays single-threaded.
		g := new(errgroup.Group)
		g.SetLimit(4)
		for i, path := range args {
			g.Go(func() error {
				values, err := samples.ReadFile(path)
				if err != nil {
					return err
				}
				summaries[i] = stats.Describe(values)
				log.Debug().Str("path", path).Int("count", len(values)).Msg("Described sample file")
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		out := make(map[string]stats.Summary, len(args))
		for i, path := range args {
			out[path] = summaries[i]
		}

		encoded, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(encoded))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
