package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/vidtube/backend/bootstrap"
	"github.com/vidtube/backend/configs"
	"github.com/vidtube/backend/database"
	_ "github.com/vidtube/backend/docs"
	"github.com/vidtube/backend/internal/handlers"
	"github.com/vidtube/backend/internal/middleware"
	"github.com/vidtube/backend/internal/repository"
	"github.com/vidtube/backend/internal/routes"
	"github.com/vidtube/backend/internal/storage"
	"github.com/vidtube/backend/internal/token"
)

// @title vidtube API
// @version 1.0
// @description Video sharing platform backend
// @BasePath /api/v1
func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
		log = log.Level(level)
	}

	ctx := context.Background()

	client, err := database.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to mongodb")
	}
	db := client.Database(cfg.Mongo.DBName)

	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("could not ensure indexes")
	}

	media, err := storage.NewS3Storage(ctx, cfg.ObjectStore)
	if err != nil {
		log.Fatal().Err(err).Msg("could not configure media storage")
	}

	tokens := token.NewManager(
		cfg.Auth.AccessTokenSecret, cfg.Auth.RefreshTokenSecret,
		cfg.Auth.AccessTokenExpiry, cfg.Auth.RefreshTokenExpiry,
	)

	users := repository.NewUserRepository(db)
	videos := repository.NewVideoRepository(db)
	comments := repository.NewCommentRepository(db)
	likes := repository.NewLikeRepository(db)
	tweets := repository.NewTweetRepository(db)
	playlists := repository.NewPlaylistRepository(db)
	subscriptions := repository.NewSubscriptionRepository(db)
	dashboard := repository.NewDashboardRepository(db)

	app := routes.NewApp(cfg, log, routes.Deps{
		Users:    &handlers.UserHandler{Users: users, Media: media, Tokens: tokens, Log: log},
		Videos:   &handlers.VideoHandler{Videos: videos, Comments: comments, Likes: likes, Media: media, History: users, Log: log},
		Comments: &handlers.CommentHandler{Comments: comments, Videos: videos, Likes: likes},
		Likes:    &handlers.LikeHandler{Likes: likes, Videos: videos, Comms: comments, Tweets: tweets},
		Tweets:   &handlers.TweetHandler{Tweets: tweets, Likes: likes},
		Playlists: &handlers.PlaylistHandler{
			Playlists: playlists,
			Videos:    videos,
		},
		Subscriptions: &handlers.SubscriptionHandler{Subscriptions: subscriptions, Users: users},
		Dashboard:     &handlers.DashboardHandler{Dashboard: dashboard},

		RequireAuth:   middleware.RequireAuth(tokens, users),
		OptionalAuth:  middleware.OptionalAuth(tokens, users),
		AuthRateLimit: middleware.RateLimit(cfg.AuthRateLimit, time.Minute),
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := database.Disconnect(client); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect failed")
	}
	log.Info().Msg("server stopped cleanly")
}
