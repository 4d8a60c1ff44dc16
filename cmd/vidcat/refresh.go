package main

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"
)

var refreshTimeout time.Duration

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Synchronize all sources on a running server",
	Long: `Asks vidcatd to synchronize every configured source and waits for the
result. Overlapping refreshes share one run on the server.`,
	Args: cobra.NoArgs,
	RunE: runRefreshCmd,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
	refreshCmd.Flags().DurationVar(&refreshTimeout, "timeout", 30*time.Minute, "Maximum time to wait for the refresh")
}

func runRefreshCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL, refreshTimeout)
	resp, err := client.Refresh()
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	printSummary(cmd.OutOrStdout(), resp, nil)
	return nil
}

// printSummary prints one block per source. order fixes the source order;
// when nil, sources are sorted by name.
func printSummary(w io.Writer, resp *RefreshResponse, order []string) {
	if order == nil {
		for name := range resp.Sources {
			order = append(order, name)
		}
		slices.Sort(order)
	}

	for _, name := range order {
		s, ok := resp.Sources[name]
		if !ok {
			continue
		}
		if s.Error != "" {
			fmt.Fprintf(w, "%s: error: %s\n", name, s.Error)
			continue
		}
		fmt.Fprintf(w, "%s: %d added, %d skipped, %d failed\n", name, len(s.Added), s.Skipped, len(s.Failed))
		for _, a := range s.Added {
			fmt.Fprintf(w, "  + %s\n", a)
		}
		for _, f := range s.Failed {
			fmt.Fprintf(w, "  ! %s: %s\n", f.Path, f.Error)
		}
	}
	fmt.Fprintf(w, "\nrun %s finished in %s\n", resp.RunID, time.Duration(resp.DurationMS)*time.Millisecond)
}
