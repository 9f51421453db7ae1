package app

import (
	"context"
	"log"
	"os"
	"time"

	"career-bridge/internal/config"
	"career-bridge/internal/database"
	dbpostgres "career-bridge/internal/database/postgres"
	"career-bridge/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	cacheClient := cache.NewRedis(cfg.Redis, logger)

	return &Container{Config: cfg, DB: db, Cache: cacheClient, Logger: logger}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
