package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const adminActionCollection = "admin_actions"

type AdminActionRepo interface {
	Create(ctx context.Context, action *AdminActionModel) error
	// ListByTarget 某对象的审计记录，按时间倒序
	ListByTarget(ctx context.Context, targetType string, targetID uint64, limit int64) ([]*AdminActionModel, error)
}

type adminActionRepoImpl struct {
	col *mongo.Collection
}

func NewAdminActionRepo(db *mongo.Database) AdminActionRepo {
	return &adminActionRepoImpl{
		col: db.Collection(adminActionCollection),
	}
}

func (s *adminActionRepoImpl) Create(ctx context.Context, action *AdminActionModel) error {
	_, err := s.col.InsertOne(ctx, action)
	return err
}

func (s *adminActionRepoImpl) ListByTarget(ctx context.Context, targetType string, targetID uint64, limit int64) ([]*AdminActionModel, error) {
	filter := bson.M{"target_type": targetType, "target_id": targetID}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*AdminActionModel, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(adminActionCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "target_type", Value: 1},
			{Key: "target_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
	return err
}
