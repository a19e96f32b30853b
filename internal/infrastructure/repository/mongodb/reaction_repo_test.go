package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

func TestReactionRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	target := entity.ArticleTarget("a1")

	mt.Run("find existing reaction", func(mt *mtest.T) {
		repo := NewReactionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "inkwell.reactions", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "r1"},
			{Key: "target_type", Value: "article"},
			{Key: "target_id", Value: "a1"},
			{Key: "user_id", Value: "u1"},
			{Key: "value", Value: "like"},
		}))

		reaction, err := repo.FindReaction(ctx, target, "u1")
		require.NoError(t, err)
		assert.Equal(t, "r1", reaction.ID)
		assert.Equal(t, target, reaction.Target)
		assert.Equal(t, entity.VoteLike, reaction.Value)
	})

	mt.Run("find missing reaction", func(mt *mtest.T) {
		repo := NewReactionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "inkwell.reactions", mtest.FirstBatch))

		_, err := repo.FindReaction(ctx, target, "u1")
		assert.ErrorIs(t, err, contract.ErrNotFound)
	})

	mt.Run("create reaction", func(mt *mtest.T) {
		repo := NewReactionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.CreateReaction(ctx, &entity.Reaction{ID: "r1", Target: target, UserID: "u1", Value: entity.VoteLike, CreatedAt: time.Now()})
		assert.NoError(t, err)
	})

	mt.Run("create duplicate reaction", func(mt *mtest.T) {
		repo := NewReactionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: inkwell.reactions index: uniq_target_user",
		}))

		err := repo.CreateReaction(ctx, &entity.Reaction{ID: "r2", Target: target, UserID: "u1", Value: entity.VoteLike})
		assert.ErrorIs(t, err, contract.ErrDuplicate)
	})

	mt.Run("switch value", func(mt *mtest.T) {
		repo := NewReactionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		assert.NoError(t, repo.UpdateReactionValue(ctx, "r1", entity.VoteDislike))
	})

	mt.Run("switch missing reaction", func(mt *mtest.T) {
		repo := NewReactionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		assert.ErrorIs(t, repo.UpdateReactionValue(ctx, "gone", entity.VoteDislike), contract.ErrNotFound)
	})

	mt.Run("delete reaction", func(mt *mtest.T) {
		repo := NewReactionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(t, repo.DeleteReaction(ctx, "r1"))
	})

	mt.Run("delete missing reaction", func(mt *mtest.T) {
		repo := NewReactionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		assert.ErrorIs(t, repo.DeleteReaction(ctx, "gone"), contract.ErrNotFound)
	})

	mt.Run("count reactions", func(mt *mtest.T) {
		repo := NewReactionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "inkwell.reactions", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}))

		n, err := repo.CountReactions(ctx, target, entity.VoteLike)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	mt.Run("delete reactions for target", func(mt *mtest.T) {
		repo := NewReactionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 4}))

		n, err := repo.DeleteReactionsForTarget(ctx, target)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})
}
