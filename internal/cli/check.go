package cli

import (
	"context"
	"fmt"
	"io"

	"i18n-catalog/internal/catalog"
	"i18n-catalog/internal/config"
	"i18n-catalog/internal/filewalker"
	"i18n-catalog/internal/keydiff"
	"i18n-catalog/internal/parser"
	"i18n-catalog/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <locale-dir>",
		Short: "Compare every <locale>.ts in a directory against the reference locale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			reference, _ := cmd.Flags().GetString("reference")
			if reference == "" {
				reference = cfg.ReferenceLocale
			}
			record, _ := cmd.Flags().GetBool("record")
			return runCheck(cmd.OutOrStdout(), args[0], reference, format, record, cfg)
		},
	}

	cmd.Flags().String("reference", "", "Reference locale (default $CATALOG_REFERENCE_LOCALE or zh)")
	cmd.Flags().String("format", string(keydiff.FormatText), "Report format: text, json or toml")
	cmd.Flags().Bool("record", false, "Record key-set snapshots in DATABASE_URL")

	return cmd
}

// runCheck handles the `check` command.
func runCheck(w io.Writer, dir, reference string, format keydiff.Format, record bool, cfg *config.Config) error {
	ctx, cancel := setupContext()
	defer cancel()

	entries, err := filewalker.NewWalker().Walk(dir)
	if err != nil {
		return fmt.Errorf("walk locale directory: %w", err)
	}

	ref, ok := filewalker.Find(entries, reference)
	if !ok {
		return fmt.Errorf("reference locale %q not found in %s", reference, dir)
	}

	sets, err := extractAll(ctx, cfg.WorkerCount, entries)
	if err != nil {
		return err
	}

	results := make(map[string]keydiff.Result, len(entries)-1)
	differ := 0
	for _, e := range entries {
		if e.Path == ref.Path {
			continue
		}
		r := keydiff.Compare(ref.Path, sets[ref.Path], e.Path, sets[e.Path])
		logResult(r)
		if !r.Identical {
			differ++
		}
		results[e.Locale] = r
	}

	if err := keydiff.WriteSet(w, results, format); err != nil {
		return err
	}

	if record {
		if err := recordSnapshots(ctx, cfg, sets); err != nil {
			return err
		}
	}

	log.Info().
		Int("locales", len(entries)).
		Int("differ", differ).
		Str("reference", ref.Locale).
		Msg("Check complete")

	if differ > 0 {
		return errCatalogsDiffer
	}
	return nil
}

// extractAll loads the key set of every entry in parallel, keyed by path.
// The first failure aborts the check.
func extractAll(ctx context.Context, workers int, entries []filewalker.FileEntry) (map[string]parser.KeySet, error) {
	pool := worker.NewPool[filewalker.FileEntry, parser.KeySet](workers,
		func(ctx context.Context, e filewalker.FileEntry) (parser.KeySet, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return catalog.LoadKeys(e.Path)
		},
	)

	sets := make(map[string]parser.KeySet, len(entries))
	for _, task := range pool.Execute(ctx, entries) {
		if task.Err != nil {
			return nil, fmt.Errorf("extract keys from %s: %w", task.Input.Path, task.Err)
		}
		log.Debug().Str("locale", task.Input.Locale).Int("keys", len(task.Result)).Msg("Extracted keys")
		sets[task.Input.Path] = task.Result
	}
	return sets, nil
}
