package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// TagRepository represents the MongoDB implementation of the ITagRepository interface.
type TagRepository struct {
	collection *mongo.Collection
}

// NewTagRepository creates and returns a new TagRepository instance.
func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{
		collection: db.Collection(TagsCollection),
	}
}

var _ contract.ITagRepository = (*TagRepository)(nil)

// GetOrCreateTags upserts each name and returns the stored tags in input order.
func (r *TagRepository) GetOrCreateTags(ctx context.Context, names []string) ([]*entity.Tag, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	tags := make([]*entity.Tag, 0, len(names))
	for _, name := range names {
		update := bson.M{"$setOnInsert": bson.M{
			"_id":        uuid.New().String(),
			"created_at": time.Now(),
		}}
		var tag entity.Tag
		if err := r.collection.FindOneAndUpdate(ctx, bson.M{"name": name}, update, opts).Decode(&tag); err != nil {
			return nil, translate(err, "get or create tag "+name)
		}
		tags = append(tags, &tag)
	}
	return tags, nil
}

// GetAllTags retrieves all tag records from the database.
func (r *TagRepository) GetAllTags(ctx context.Context) ([]*entity.Tag, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, translate(err, "retrieve tags")
	}
	defer cursor.Close(ctx)

	tags := []*entity.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, translate(err, "decode tags")
	}
	return tags, nil
}
