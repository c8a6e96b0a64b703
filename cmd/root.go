package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/julienpequegnot/devpub/internal/article"
	"github.com/julienpequegnot/devpub/internal/config"
	"github.com/julienpequegnot/devpub/internal/database"
	"github.com/julienpequegnot/devpub/internal/devto"
	"github.com/julienpequegnot/devpub/internal/history"
	"github.com/julienpequegnot/devpub/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "devpub",
	Short: "Publish a curated article collection to dev.to",
	Long: `Devpub keeps a small collection of markdown articles and publishes
them to dev.to through its REST API.

The API key is read from the DEVTO_API_KEY environment variable.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

var (
	debug bool
	cfg   *config.Config
	log   *zap.SugaredLogger
)

func init() {
	rootCmd.Version = "0.1.0"
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Log.Level
	if debug {
		level = "debug"
	}
	log, err = logger.New(level, cfg.Log.Format)
	if err != nil {
		return err
	}
	return nil
}

// clientOptions are appended when building the API client.
var clientOptions []devto.Option

func newClient() *devto.Client {
	opts := append([]devto.Option{devto.WithLogger(log.Named("devto"))}, clientOptions...)
	return devto.NewClient(config.APIKey(), opts...)
}

func loadStore() (*article.Store, error) {
	if cfg.ArticlesFile == "" {
		return article.Default()
	}
	log.Debugw("loading articles", "path", cfg.ArticlesFile)
	return article.LoadFile(cfg.ArticlesFile)
}

// openHistory opens the publication log, creating the home directory on
// first use. The returned close func must be called.
func openHistory() (*history.Repository, func(), error) {
	if err := os.MkdirAll(config.Dir(), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create directory: %w", err)
	}
	db, err := database.New(config.DBPath())
	if err != nil {
		return nil, nil, err
	}
	return history.NewRepository(db), func() { db.Close() }, nil
}

// reportConfigError prints setup help for a missing credential to w. It
// returns true when err was a config error and has been handled.
func reportConfigError(w io.Writer, err error) bool {
	if !devto.IsConfig(err) {
		return false
	}
	fmt.Fprintln(w, errorStyle.Render("✗ "+err.Error()))
	fmt.Fprintln(w, "\nSet the environment variable:")
	fmt.Fprintf(w, "  export %s='your-dev.to-api-key'\n", config.APIKeyEnv)
	fmt.Fprintln(w, "\nTo get a key:")
	fmt.Fprintln(w, "  1. Visit https://dev.to/settings/extensions")
	fmt.Fprintln(w, "  2. Find the 'DEV Community API Keys' section")
	fmt.Fprintln(w, "  3. Generate a new key")
	return true
}
