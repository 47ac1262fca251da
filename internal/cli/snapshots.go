package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"i18n-catalog/internal/config"

	"github.com/spf13/cobra"
)

func snapshotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots <file>",
		Short: "List recorded key-set snapshots of a catalog (requires DATABASE_URL)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return runSnapshots(cmd.OutOrStdout(), args[0], limit)
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum number of snapshots to list")

	return cmd
}

// runSnapshots handles the `snapshots` command.
func runSnapshots(w io.Writer, file string, limit int) error {
	ctx, cancel := setupContext()
	defer cancel()

	s, closeStore, err := openSnapshotStore(ctx, config.Load())
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer closeStore()

	snaps, err := s.List(ctx, file, limit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRECORDED\tKEYS\tDIGEST")
	for _, snap := range snaps {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", snap.ID, snap.RecordedAt.Format(time.RFC3339), snap.KeyCount, snap.Digest[:12])
	}
	return tw.Flush()
}
