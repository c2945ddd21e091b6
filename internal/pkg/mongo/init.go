package mongo

import (
	"Trendscope/internal/api/config"
	"Trendscope/internal/pkg/logger"
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongo 建立连接并返回 Database 引用
func InitMongo(cfg config.MongoConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetMonitor(logger.NewMongoMonitor()),
	)
	if err != nil {
		return nil, err
	}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(cfg.Database)
	if err = ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	log.Info("MongoDB initialized successfully", "db", cfg.Database)
	return db, nil
}
