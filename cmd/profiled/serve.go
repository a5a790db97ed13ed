package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/profiledesk/profile-directory/internal/api"
	"github.com/profiledesk/profile-directory/internal/api/handler"
	"github.com/profiledesk/profile-directory/internal/core/ports"
	"github.com/profiledesk/profile-directory/internal/core/service"
	"github.com/profiledesk/profile-directory/internal/infrastructure/config"
	"github.com/profiledesk/profile-directory/internal/infrastructure/db/mongo"
	"github.com/profiledesk/profile-directory/internal/infrastructure/db/redis"
	"github.com/profiledesk/profile-directory/internal/infrastructure/llm"
	"github.com/profiledesk/profile-directory/internal/infrastructure/session"
	"github.com/profiledesk/profile-directory/web"
)

const shutdownGrace = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runWithApp(serve),
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, a *app) error {
	ctx := cmd.Context()
	cfg, log := a.cfg, a.log

	if err := a.profiles.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("ensure indexes failed; continuing")
	}

	checks := map[string]handler.Check{"mongodb": mongo.Pinger(a.client)}

	var sessions ports.SessionStore
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		rdb, err := redis.Connect(ctx, redis.Config{URL: cfg.Redis.URL})
		if err != nil {
			return err
		}
		defer rdb.Close()
		sessions = redis.NewSessionStore(rdb)
		checks["redis"] = redis.Pinger(rdb)
		log.Info().Msg("session store: redis")
	default:
		sessions = session.NewMemoryStore()
		log.Info().Msg("session store: memory")
	}

	var classifier ports.IntentClassifier
	if cfg.AI.Enabled() {
		c, err := newClassifier(ctx, cfg, a)
		if err != nil {
			log.Warn().Err(err).Msg("chat classifier unavailable; chat will answer \"not configured\"")
		} else {
			classifier = c
			log.Info().Str("model", cfg.AI.Model).Msg("chat classifier ready")
		}
	} else {
		log.Warn().Msg("ARK_API_KEY or ARK_MODEL not set; chat will answer \"not configured\"")
	}

	profiles := service.NewProfileService(a.profiles, log)
	auth := service.NewAuthService(a.profiles, sessions, log)
	chat := service.NewChatService(profiles, classifier, log)

	e := api.NewRouter(api.Deps{
		Log:         log,
		Profiles:    profiles,
		Auth:        auth,
		Chat:        chat,
		Checks:      checks,
		CORSOrigins: cfg.CORSOrigins,
		Static:      web.Static,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

func newClassifier(ctx context.Context, cfg *config.Config, a *app) (*llm.Classifier, error) {
	cm, err := llm.NewChatModel(ctx, cfg.AI.Ark())
	if err != nil {
		return nil, err
	}
	return llm.NewClassifier(ctx, cm, a.log)
}
