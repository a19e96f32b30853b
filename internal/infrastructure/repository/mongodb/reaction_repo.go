package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// ReactionRepository represents the MongoDB implementation of the IReactionRepository interface.
type ReactionRepository struct {
	collection *mongo.Collection
}

// NewReactionRepository creates and returns a new ReactionRepository instance.
func NewReactionRepository(db *mongo.Database) *ReactionRepository {
	return &ReactionRepository{
		collection: db.Collection(ReactionsCollection),
	}
}

var _ contract.IReactionRepository = (*ReactionRepository)(nil)

func targetFilter(target entity.Target) bson.M {
	return bson.M{"target_type": target.Type, "target_id": target.ID}
}

// FindReaction retrieves the user's reaction on a target.
func (r *ReactionRepository) FindReaction(ctx context.Context, target entity.Target, userID string) (*entity.Reaction, error) {
	filter := targetFilter(target)
	filter["user_id"] = userID

	var reaction entity.Reaction
	if err := r.collection.FindOne(ctx, filter).Decode(&reaction); err != nil {
		return nil, translate(err, "retrieve reaction")
	}
	return &reaction, nil
}

// CreateReaction inserts a new reaction. The unique (target_type, target_id, user_id)
// index turns a concurrent second insert into ErrDuplicate.
func (r *ReactionRepository) CreateReaction(ctx context.Context, reaction *entity.Reaction) error {
	_, err := r.collection.InsertOne(ctx, reaction)
	return translate(err, "create reaction")
}

// UpdateReactionValue flips the value of an existing reaction in place.
func (r *ReactionRepository) UpdateReactionValue(ctx context.Context, reactionID string, value entity.Vote) error {
	update := bson.M{"$set": bson.M{"value": value, "updated_at": time.Now()}}
	res, err := r.collection.UpdateByID(ctx, reactionID, update)
	if err != nil {
		return translate(err, "update reaction")
	}
	if res.MatchedCount == 0 {
		return translate(mongo.ErrNoDocuments, "update reaction")
	}
	return nil
}

// DeleteReaction removes a reaction by its ID.
func (r *ReactionRepository) DeleteReaction(ctx context.Context, reactionID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": reactionID})
	if err != nil {
		return translate(err, "delete reaction")
	}
	if res.DeletedCount == 0 {
		return translate(mongo.ErrNoDocuments, "delete reaction")
	}
	return nil
}

// CountReactions counts the reactions of one value on a target.
func (r *ReactionRepository) CountReactions(ctx context.Context, target entity.Target, value entity.Vote) (int64, error) {
	filter := targetFilter(target)
	filter["value"] = value

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, translate(err, "count reactions")
	}
	return count, nil
}

// DeleteReactionsForTarget removes every reaction on a target.
func (r *ReactionRepository) DeleteReactionsForTarget(ctx context.Context, target entity.Target) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, targetFilter(target))
	if err != nil {
		return 0, translate(err, "delete reactions")
	}
	return res.DeletedCount, nil
}
