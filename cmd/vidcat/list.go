package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vmunix/vidcat/internal/catalog"
)

var listSource string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged videos from the local database",
	Args:  cobra.NoArgs,
	RunE:  runListCmd,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listSource, "source", "", "Only list videos from this source")
}

func runListCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	db, err := catalog.Open(cfg.Database.Path, newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	var filter catalog.VideoFilter
	if listSource != "" {
		filter.Source = &listSource
	}
	videos, total, err := catalog.NewStore(db).ListVideos(filter)
	if err != nil {
		return err
	}

	if jsonOutput {
		if videos == nil {
			videos = []*catalog.Video{}
		}
		return printJSON(cmd.OutOrStdout(), videos)
	}
	printVideos(cmd.OutOrStdout(), videos, total)
	return nil
}

func printVideos(w io.Writer, videos []*catalog.Video, total int) {
	if len(videos) == 0 {
		fmt.Fprintln(w, "No videos cataloged.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tNAME\tTYPE\tSIZE\tDURATION\tVIDEO\tAUDIO")
	for _, v := range videos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			v.Source, v.FileName, v.FileExtension, v.OtherFileSize, v.OtherDuration, v.VideoCodecs, v.AudioCodecs)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "\n%d videos\n", total)
}
