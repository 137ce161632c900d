package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/justestif/go-spotify-genre-dashboard/internal/clustering"
	"github.com/justestif/go-spotify-genre-dashboard/internal/config"
	"github.com/justestif/go-spotify-genre-dashboard/internal/dataset"
	"github.com/justestif/go-spotify-genre-dashboard/internal/db"
	"github.com/justestif/go-spotify-genre-dashboard/internal/model"
	"github.com/justestif/go-spotify-genre-dashboard/internal/prediction"
	"github.com/justestif/go-spotify-genre-dashboard/internal/spotify"
	"github.com/justestif/go-spotify-genre-dashboard/internal/views"
	"github.com/justestif/go-spotify-genre-dashboard/internal/web"
	webfs "github.com/justestif/go-spotify-genre-dashboard/web"
)

func newServeCmd() *cobra.Command {
	flags := config.Default()
	table := db.DefaultTable

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard web server",
		Long: `Loads the dataset and model artifacts, then serves the dashboard.

The listen port comes from the PORT environment variable (default 8050).
Any load failure aborts startup.`,
		Example: `  # Serve with default paths on port 8050
  genre-dashboard serve

  # Read tracks from Postgres instead of a file
  genre-dashboard serve --dataset-dsn postgres://localhost/spotify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.DatasetPath = flags.DatasetPath
			cfg.DatasetDSN = flags.DatasetDSN
			cfg.ClassifierPath = flags.ClassifierPath
			cfg.ScalerPath = flags.ScalerPath
			cfg.EncoderPath = flags.EncoderPath

			return run(cmd.Context(), cfg, table)
		},
	}

	cmd.Flags().StringVar(&flags.DatasetPath, "dataset", flags.DatasetPath, "Dataset file (.csv or .parquet)")
	cmd.Flags().StringVar(&flags.DatasetDSN, "dataset-dsn", "", "PostgreSQL URL to read tracks from instead of --dataset")
	cmd.Flags().StringVar(&table, "dataset-table", table, "Table to read when --dataset-dsn is set")
	cmd.Flags().StringVar(&flags.ClassifierPath, "model", flags.ClassifierPath, "Classifier artifact")
	cmd.Flags().StringVar(&flags.ScalerPath, "scaler", flags.ScalerPath, "Scaler artifact")
	cmd.Flags().StringVar(&flags.EncoderPath, "encoder", flags.EncoderPath, "Label encoder artifact")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, table string) error {
	store, err := loadStore(ctx, cfg, table)
	if err != nil {
		return err
	}
	slog.Info("Dataset loaded", "tracks", store.Len(), "titles", len(store.Titles()), "genres", len(store.Genres()))

	bundle, err := model.Load(model.Paths{
		Classifier: cfg.ClassifierPath,
		Scaler:     cfg.ScalerPath,
		Encoder:    cfg.EncoderPath,
	})
	if err != nil {
		return fmt.Errorf("loading model: %w", err)
	}
	slog.Info("Model loaded", "classifier", cfg.ClassifierPath, "labels", bundle.Encoder.Len())

	router, err := views.NewRouter(views.Inputs{
		Store:  store,
		Scores: model.Scores(),
		Embeds: spotify.TopTracks(),
		Mood:   clustering.DefaultMoodConfig(),
	})
	if err != nil {
		return fmt.Errorf("building views: %w", err)
	}

	templates, err := webfs.Templates()
	if err != nil {
		return fmt.Errorf("loading templates filesystem: %w", err)
	}
	static, err := webfs.Static()
	if err != nil {
		return fmt.Errorf("loading static filesystem: %w", err)
	}

	server, err := web.NewServer(web.ServerConfig{
		Addr:        cfg.Addr(),
		TemplatesFS: templates,
		StaticFS:    static,
		Views:       router,
		Predictor:   prediction.NewService(store, bundle),
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run(ctx)
}

func loadStore(ctx context.Context, cfg *config.Config, table string) (*dataset.Store, error) {
	if cfg.DatasetDSN == "" {
		store, err := dataset.LoadFile(cfg.DatasetPath)
		if err != nil {
			return nil, fmt.Errorf("loading dataset: %w", err)
		}
		return store, nil
	}

	database, err := db.New(ctx, cfg.DatasetDSN)
	if err != nil {
		return nil, fmt.Errorf("connecting to dataset database: %w", err)
	}
	defer database.Close()

	tracks, err := database.Tracks().All(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("loading dataset from %s: %w", table, err)
	}
	return dataset.NewStore(tracks), nil
}
