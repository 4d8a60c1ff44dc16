package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status and catalog counts",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL, 30*time.Second)
	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), status)
	}
	printStatus(cmd.OutOrStdout(), serverURL, status)
	return nil
}

func printStatus(w io.Writer, server string, s *StatusResponse) {
	fmt.Fprintf(w, "vidcatd %s | Server: %s | Status: %s | Schema: v%d\n\n", s.Version, server, s.Status, s.SchemaVersion)

	counts := make(map[string]int, len(s.Counts))
	for _, c := range s.Counts {
		counts[c.Source] = c.Count
	}
	fmt.Fprintln(w, "Sources:")
	for _, src := range s.Sources {
		fmt.Fprintf(w, "  %-12s %6d  %s\n", src.Name, counts[src.Name], src.Root)
	}
	fmt.Fprintf(w, "\nTotal: %d videos\n", s.Total)
}
