package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// CommentRepository stores comments and the history of their edits.
type CommentRepository struct {
	collection *mongo.Collection
	history    *mongo.Collection
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		collection: db.Collection(CommentsCollection),
		history:    db.Collection(CommentHistoryCollection),
	}
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	_, err := r.collection.InsertOne(ctx, comment)
	return translate(err, "create comment")
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var comment entity.Comment
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment); err != nil {
		return nil, translate(err, "retrieve comment")
	}
	return &comment, nil
}

// ListByArticle returns the comments of an article, oldest first.
func (r *CommentRepository) ListByArticle(ctx context.Context, articleID string) ([]*entity.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"article_id": articleID}, opts)
	if err != nil {
		return nil, translate(err, "list comments")
	}
	defer cursor.Close(ctx)

	comments := []*entity.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, translate(err, "decode comments")
	}
	return comments, nil
}

func (r *CommentRepository) UpdateBody(ctx context.Context, id, body string) error {
	update := bson.M{"$set": bson.M{"body": body, "updated_at": time.Now()}}
	res, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return translate(err, "update comment")
	}
	if res.MatchedCount == 0 {
		return translate(mongo.ErrNoDocuments, "update comment")
	}
	return nil
}

// Delete removes the comment and its edit history.
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err, "delete comment")
	}
	if res.DeletedCount == 0 {
		return translate(mongo.ErrNoDocuments, "delete comment")
	}
	if _, err := r.history.DeleteMany(ctx, bson.M{"comment_id": id}); err != nil {
		return translate(err, "delete comment history")
	}
	return nil
}

// DeleteByArticle removes every comment of an article and returns their ids.
func (r *CommentRepository) DeleteByArticle(ctx context.Context, articleID string) ([]string, error) {
	filter := bson.M{"article_id": articleID}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, translate(err, "find comments")
	}
	var rows []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, translate(err, "decode comment ids")
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	if len(ids) == 0 {
		return ids, nil
	}

	if _, err := r.collection.DeleteMany(ctx, filter); err != nil {
		return nil, translate(err, "delete comments")
	}
	if _, err := r.history.DeleteMany(ctx, bson.M{"comment_id": bson.M{"$in": ids}}); err != nil {
		return nil, translate(err, "delete comment history")
	}
	return ids, nil
}

func (r *CommentRepository) AddHistory(ctx context.Context, history *entity.CommentHistory) error {
	_, err := r.history.InsertOne(ctx, history)
	return translate(err, "add comment history")
}

// ListHistory returns earlier bodies of a comment, oldest first.
func (r *CommentRepository) ListHistory(ctx context.Context, commentID string) ([]*entity.CommentHistory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: 1}})
	cursor, err := r.history.Find(ctx, bson.M{"comment_id": commentID}, opts)
	if err != nil {
		return nil, translate(err, "list comment history")
	}
	defer cursor.Close(ctx)

	history := []*entity.CommentHistory{}
	if err := cursor.All(ctx, &history); err != nil {
		return nil, translate(err, "decode comment history")
	}
	return history, nil
}
