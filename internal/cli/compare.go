package cli

import (
	"context"
	"fmt"
	"io"

	"i18n-catalog/internal/catalog"
	"i18n-catalog/internal/config"
	"i18n-catalog/internal/keydiff"
	"i18n-catalog/internal/parser"
	"i18n-catalog/internal/textutil"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func compareKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare-keys <first> <second>",
		Short: "Compare the key structure of two catalogs",
		Long: `Extracts every leaf key path from both catalogs and reports the keys
missing from each. Report labels are missing_in_<file basename>.
Exits non-zero when the catalogs differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			record, _ := cmd.Flags().GetBool("record")
			return runCompareKeys(cmd.OutOrStdout(), args[0], args[1], format, record)
		},
	}

	cmd.Flags().String("format", string(keydiff.FormatText), "Report format: text, json or toml")
	cmd.Flags().Bool("record", false, "Record key-set snapshots in DATABASE_URL")

	return cmd
}

func formatFlag(cmd *cobra.Command) (keydiff.Format, error) {
	s, _ := cmd.Flags().GetString("format")
	return keydiff.ParseFormat(s)
}

// runCompareKeys handles the `compare-keys` command.
func runCompareKeys(w io.Writer, firstPath, secondPath string, format keydiff.Format, record bool) error {
	log.Info().Str("first", firstPath).Str("second", secondPath).Msg("Comparing catalog keys")

	first, err := catalog.LoadKeys(firstPath)
	if err != nil {
		return fmt.Errorf("extract keys from %s: %w", firstPath, err)
	}
	second, err := catalog.LoadKeys(secondPath)
	if err != nil {
		return fmt.Errorf("extract keys from %s: %w", secondPath, err)
	}

	result := keydiff.Compare(firstPath, first, secondPath, second)
	logResult(result)

	if record {
		ctx, cancel := setupContext()
		defer cancel()
		if err := recordSnapshots(ctx, config.Load(), map[string]parser.KeySet{
			firstPath:  first,
			secondPath: second,
		}); err != nil {
			return err
		}
	}

	if err := keydiff.Write(w, result, format); err != nil {
		return err
	}
	if !result.Identical {
		return errCatalogsDiffer
	}
	return nil
}

func logResult(r keydiff.Result) {
	event := log.Info()
	if !r.Identical {
		event = log.Warn()
	}
	event.
		Bool("identical", r.Identical).
		Str(r.FirstLabel, textutil.Preview(r.MissingInFirst, 5)).
		Str(r.SecondLabel, textutil.Preview(r.MissingInSecond, 5)).
		Msg("Compared catalog keys")
}

// recordSnapshots stores one snapshot per file.
func recordSnapshots(ctx context.Context, cfg *config.Config, sets map[string]parser.KeySet) error {
	s, closeStore, err := openSnapshotStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer closeStore()

	for file, keys := range sets {
		snap, err := s.Record(ctx, file, keys)
		if err != nil {
			return err
		}
		log.Info().Str("file", snap.File).Int("keys", snap.KeyCount).Int64("id", snap.ID).Msg("Recorded snapshot")
	}
	return nil
}
