// Package storage opens the user store selected by configuration.
package storage

import (
	"context"
	"fmt"

	"loginsvc/internal/adapters/docstore"
	"loginsvc/internal/adapters/mongo"
	"loginsvc/internal/adapters/postgres"
	"loginsvc/internal/adapters/redis"
	"loginsvc/internal/adapters/sqlite"
	"loginsvc/internal/config"
	"loginsvc/internal/domain"
	"loginsvc/internal/logger"
)

type UserStore interface {
	domain.LoadUserByEmailRepository
	domain.CreateUserRepository
}

type Store struct {
	Users  UserStore
	closer func() error
}

func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := postgres.InitDB(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		return &Store{
			Users:  postgres.NewUserRepository(pool),
			closer: func() error { pool.Close(); return nil },
		}, nil

	case config.DriverSqlite:
		db, err := sqlite.NewSqliteDB(cfg.SqlitePath, log)
		if err != nil {
			return nil, err
		}
		if err := sqlite.MigrateUp(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Store{
			Users:  sqlite.NewUserRepository(db),
			closer: db.Close,
		}, nil

	case config.DriverRedis:
		rdb, err := redis.NewClient(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		log.Info("redis connection established successfully", "addr", cfg.RedisAddr)
		users := redis.NewCollection(rdb, cfg.UsersCollection, "email")
		return &Store{
			Users:  docstore.NewUserRepository(users),
			closer: rdb.Close,
		}, nil

	case config.DriverMongo:
		client, err := mongo.Connect(ctx, cfg.MongoURL)
		if err != nil {
			return nil, err
		}
		users := mongo.NewCollection(client.Database(cfg.MongoDatabase), cfg.UsersCollection)
		if err := users.EnsureEmailIndex(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		log.Info("mongo connection established successfully", "database", cfg.MongoDatabase)
		return &Store{
			Users:  docstore.NewUserRepository(users),
			closer: func() error { return client.Disconnect(context.Background()) },
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
