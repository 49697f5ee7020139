package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/tasknest/todo-system/internal/api"
	mongodb "github.com/tasknest/todo-system/internal/infrastructure/db/mongo"
	redisdb "github.com/tasknest/todo-system/internal/infrastructure/db/redis"
	"github.com/tasknest/todo-system/internal/pkg/config"
	"github.com/tasknest/todo-system/pkg/logger"
)

// @title        Tasknest Todo API
// @version      1.0
// @description  Session-authenticated multi-user todo service.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	e := api.NewRouter(db, rdb, cfg)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
