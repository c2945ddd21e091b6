package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestAdminActionRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		repo := &adminActionRepoImpl{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Create(context.Background(), &AdminActionModel{
			AdminID:    1,
			Action:     "RANKING_OVERRIDE",
			TargetType: "product_ranking",
			TargetID:   9,
			CreatedAt:  time.Now(),
		})
		require.NoError(t, err)
	})

	mt.Run("list by target", func(mt *mtest.T) {
		repo := &adminActionRepoImpl{col: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "admin_id", Value: int64(1)},
			{Key: "action", Value: "RANKING_OVERRIDE"},
			{Key: "target_type", Value: "product_ranking"},
			{Key: "target_id", Value: int64(9)},
			{Key: "after", Value: bson.D{{Key: "rank", Value: int32(1)}}},
		})
		end := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, end)

		list, err := repo.ListByTarget(context.Background(), "product_ranking", 9, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "RANKING_OVERRIDE", list[0].Action)
		assert.Equal(t, uint64(9), list[0].TargetID)
		assert.EqualValues(t, 1, list[0].After["rank"])
	})

	mt.Run("create failure", func(mt *mtest.T) {
		repo := &adminActionRepoImpl{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		err := repo.Create(context.Background(), &AdminActionModel{Action: "RANKING_OVERRIDE"})
		assert.Error(t, err)
	})
}
