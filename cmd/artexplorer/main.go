package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/catalog"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/config"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/database"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/gallery"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/schema"
)

var (
	configFile string
)

func main() {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "artexplorer",
		Short:         "Search the artwork catalog and curate a personal gallery",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newSearchCommand(),
		newAdvancedCommand(),
		newArtistsCommand(),
		newGalleryCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		})),
	)
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create a config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load the config: %w", err)
	}
	return cfg, nil
}

func newCatalogClient(cfg *config.Config) *catalog.Client {
	return catalog.NewClient(catalog.ClientConfig{
		BaseURL:         cfg.Catalog.BaseURL,
		Timeout:         cfg.Catalog.Timeout(),
		ArtworkPageSize: cfg.Catalog.ArtworkPageSize,
		ArtistPageSize:  cfg.Catalog.ArtistPageSize,
	})
}

// newGalleryStore opens the configured durable backend and loads the gallery.
// The returned closer releases the backend and may be nil for file storage.
func newGalleryStore(cfg *config.Config) (*gallery.Store, func() error, error) {
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create a validator: %w", err)
	}

	switch cfg.Gallery.Storage {
	case "mysql":
		db, err := database.Open(cfg.Gallery.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open the gallery database: %w", err)
		}
		return gallery.NewStore(gallery.NewDBStorage(db, cfg.Gallery.Database.Key), validator), db.Close, nil
	default:
		return gallery.NewStore(gallery.NewFileStorage(cfg.Gallery.FilePath), validator), nil, nil
	}
}
