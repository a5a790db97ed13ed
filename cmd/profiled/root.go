package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/profiledesk/profile-directory/internal/infrastructure/config"
	"github.com/profiledesk/profile-directory/internal/infrastructure/db/mongo"
	"github.com/profiledesk/profile-directory/pkg/logger"
)

const serviceName = "profiled"

var rootCmd = &cobra.Command{
	Use:           serviceName,
	Short:         "Profile directory server and maintenance commands",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// app holds what every subcommand needs: configuration, a logger and the
// profile store.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	client   *mongodriver.Client
	profiles *mongo.ProfileRepository
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
		AppName:  serviceName,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Str("collection", cfg.Mongo.Collection).Msg("connected to MongoDB")

	return &app{
		cfg:      cfg,
		log:      log,
		client:   client,
		profiles: mongo.NewProfileRepository(db, cfg.Mongo.Collection),
	}, nil
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Mongo.Timeout)
	defer cancel()
	if err := a.client.Disconnect(ctx); err != nil {
		a.log.Warn().Err(err).Msg("mongo disconnect")
	}
}

func runWithApp(fn func(cmd *cobra.Command, a *app) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return fmt.Errorf("startup: %w", err)
		}
		defer a.close()
		return fn(cmd, a)
	}
}
