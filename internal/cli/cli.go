package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"i18n-catalog/internal/config"
	"i18n-catalog/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// errCatalogsDiffer makes the process exit non-zero when key sets differ.
var errCatalogsDiffer = errors.New("catalogs differ")

// Execute runs the CLI application.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "catalogtool",
		Short:        "Type generation and key comparison for translation catalogs",
		Long:         "Reads `export default { ... }` translation catalogs, generates the I18nMessages interface and compares key structure across locales.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(config.Load().LogLevel)
		},
	}

	rootCmd.AddCommand(generateTypesCmd())
	rootCmd.AddCommand(compareKeysCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(snapshotsCmd())
	rootCmd.AddCommand(nodesCmd())
	rootCmd.AddCommand(runNodeCmd())

	return rootCmd
}

func setupLogging(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// openSnapshotStore connects to DATABASE_URL and ensures the schema.
// The returned close func must be called when done.
func openSnapshotStore(ctx context.Context, cfg *config.Config) (*store.SnapshotStore, func(), error) {
	if !cfg.SnapshotsEnabled() {
		return nil, nil, errors.New("DATABASE_URL is not set")
	}

	pool, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	s := store.NewSnapshotStore(pool)
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return s, pool.Close, nil
}
