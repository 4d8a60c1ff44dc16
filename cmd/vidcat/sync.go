package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/vidcat/internal/catalog"
	"github.com/vmunix/vidcat/internal/config"
	"github.com/vmunix/vidcat/internal/ingest"
	"github.com/vmunix/vidcat/internal/probe"
)

var syncSources []string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize sources into the local database",
	Long: `Walks the configured source roots and catalogs video files whose names
are not in the database yet. Does not need a running server.

Examples:
  vidcat sync                   # All sources, in configured order
  vidcat sync --source twitch   # One source`,
	Args: cobra.NoArgs,
	RunE: runSyncCmd,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringSliceVar(&syncSources, "source", nil, "Source to synchronize (repeatable)")
}

func sourcesFromConfig(cfg *config.Config) []ingest.Source {
	sources := make([]ingest.Source, len(cfg.Sources))
	for i, s := range cfg.Sources {
		sources[i] = ingest.Source{Name: s.Name, Root: s.Root}
	}
	return sources
}

func runSyncCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger := newLogger(cmd.ErrOrStderr())

	db, err := catalog.Open(cfg.Database.Path, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	sources := sourcesFromConfig(cfg)
	synchronizer := ingest.NewSynchronizer(catalog.NewStore(db), probe.NewFFProbe(cfg.Probe.FFprobePath), logger)
	runner := ingest.NewRunner(synchronizer, sources, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := runner.Run(ctx, syncSources...)
	if err != nil {
		return err
	}

	resp := reportToResponse(report)
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	order := make([]string, len(report.Sources))
	for i, sr := range report.Sources {
		order[i] = sr.Source
	}
	printSummary(cmd.OutOrStdout(), resp, order)
	return nil
}

// reportToResponse converts a local run to the server's refresh shape.
func reportToResponse(r *ingest.Report) *RefreshResponse {
	resp := &RefreshResponse{
		RunID:      r.RunID,
		DurationMS: r.Duration.Milliseconds(),
		Sources:    make(map[string]SourceSummary, len(r.Sources)),
	}
	for _, sr := range r.Sources {
		s := SourceSummary{Added: []string{}, Failed: []FailedSummary{}}
		if sr.Err != nil {
			s.Error = sr.Err.Error()
		}
		if sr.Result != nil {
			s.Added = append(s.Added, sr.Result.Added...)
			s.Skipped = len(sr.Result.Skipped)
			for _, f := range sr.Result.Failed {
				s.Failed = append(s.Failed, FailedSummary{Path: f.Path, Error: f.Error})
			}
		}
		resp.Sources[sr.Source] = s
	}
	return resp
}
