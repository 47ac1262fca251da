package cli

import (
	"fmt"

	"i18n-catalog/internal/catalog"
	"i18n-catalog/internal/config"
	"i18n-catalog/internal/watch"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func generateTypesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-types <zh.ts>",
		Short: "Generate types.ts from the reference catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir, _ := cmd.Flags().GetString("out")
			if outDir == "" {
				outDir = config.Load().OutputDir
			}
			out, err := runGenerateTypes(args[0], outDir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().String("out", "", "Output directory for types.ts (default $CATALOG_OUTPUT_DIR or .)")

	return cmd
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <zh.ts>",
		Short: "Regenerate types.ts whenever the reference catalog changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			outDir, _ := cmd.Flags().GetString("out")
			if outDir == "" {
				outDir = cfg.OutputDir
			}
			return runWatch(args[0], outDir, cfg)
		},
	}

	cmd.Flags().String("out", "", "Output directory for types.ts (default $CATALOG_OUTPUT_DIR or .)")

	return cmd
}

// runGenerateTypes handles the `generate-types` command.
func runGenerateTypes(zhPath, outDir string) (string, error) {
	log.Info().Str("file", zhPath).Msg("Reading catalog")

	out, err := catalog.GenerateTypes(zhPath, outDir)
	if err != nil {
		log.Error().Err(err).Str("file", zhPath).Msg("Failed to generate types.ts")
		return "", fmt.Errorf("generate types: %w", err)
	}

	log.Info().Str("output", out).Msg("Generated types.ts")
	return out, nil
}

// runWatch handles the `watch` command.
func runWatch(zhPath, outDir string, cfg *config.Config) error {
	ctx, cancel := setupContext()
	defer cancel()

	w, err := watch.New(zhPath, cfg.WatchDebounce)
	if err != nil {
		return err
	}
	defer w.Close()

	// Errors are logged and the watch continues; the catalog is often
	// mid-edit when a write lands.
	_, _ = runGenerateTypes(zhPath, outDir)

	log.Info().Str("file", zhPath).Msg("Watching catalog, press Ctrl+C to stop")
	return w.Run(ctx, func() {
		_, _ = runGenerateTypes(zhPath, outDir)
	})
}
