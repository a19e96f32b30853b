package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// FavoriteRepository stores which users favorited which articles.
type FavoriteRepository struct {
	collection *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database) *FavoriteRepository {
	return &FavoriteRepository{collection: db.Collection(FavoritesCollection)}
}

var _ contract.IFavoriteRepository = (*FavoriteRepository)(nil)

func (r *FavoriteRepository) AddFavorite(ctx context.Context, favorite *entity.Favorite) error {
	_, err := r.collection.InsertOne(ctx, favorite)
	return translate(err, "add favorite")
}

func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, userID, articleID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "article_id": articleID})
	if err != nil {
		return translate(err, "remove favorite")
	}
	if res.DeletedCount == 0 {
		return translate(mongo.ErrNoDocuments, "remove favorite")
	}
	return nil
}

func (r *FavoriteRepository) IsFavorited(ctx context.Context, userID, articleID string) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"user_id": userID, "article_id": articleID}, options.Count().SetLimit(1))
	if err != nil {
		return false, translate(err, "check favorite")
	}
	return n > 0, nil
}

func (r *FavoriteRepository) DeleteByArticle(ctx context.Context, articleID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"article_id": articleID})
	return translate(err, "delete favorites")
}

// BookmarkRepository stores per-user article bookmarks.
type BookmarkRepository struct {
	collection *mongo.Collection
}

func NewBookmarkRepository(db *mongo.Database) *BookmarkRepository {
	return &BookmarkRepository{collection: db.Collection(BookmarksCollection)}
}

var _ contract.IBookmarkRepository = (*BookmarkRepository)(nil)

func (r *BookmarkRepository) CreateBookmark(ctx context.Context, bookmark *entity.Bookmark) error {
	_, err := r.collection.InsertOne(ctx, bookmark)
	return translate(err, "create bookmark")
}

func (r *BookmarkRepository) DeleteBookmark(ctx context.Context, userID, articleID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "article_id": articleID})
	if err != nil {
		return translate(err, "delete bookmark")
	}
	if res.DeletedCount == 0 {
		return translate(mongo.ErrNoDocuments, "delete bookmark")
	}
	return nil
}

// ListBookmarksByUser returns the user's bookmarks, most recent first.
func (r *BookmarkRepository) ListBookmarksByUser(ctx context.Context, userID string) ([]*entity.Bookmark, error) {
	opts := options.Find().SetSort(bson.D{{Key: "bookmarked_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, translate(err, "list bookmarks")
	}
	defer cursor.Close(ctx)

	bookmarks := []*entity.Bookmark{}
	if err := cursor.All(ctx, &bookmarks); err != nil {
		return nil, translate(err, "decode bookmarks")
	}
	return bookmarks, nil
}

// RatingRepository keeps one rating per (author, article).
type RatingRepository struct {
	collection *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{collection: db.Collection(RatingsCollection)}
}

var _ contract.IRatingRepository = (*RatingRepository)(nil)

func (r *RatingRepository) UpsertRating(ctx context.Context, rating *entity.Rating) (*entity.Rating, error) {
	filter := bson.M{"author_id": rating.AuthorID, "article_id": rating.ArticleID}
	update := bson.M{
		"$set":         bson.M{"score": rating.Score, "rated_on": rating.RatedOn},
		"$setOnInsert": bson.M{"_id": rating.ID},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored entity.Rating
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, translate(err, "upsert rating")
	}
	return &stored, nil
}

// GetRatingSummary averages all scores of an article. No ratings yields a zero summary.
func (r *RatingRepository) GetRatingSummary(ctx context.Context, articleID string) (entity.RatingSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"article_id": articleID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$score"},
			"count":   bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return entity.RatingSummary{}, translate(err, "aggregate ratings")
	}
	defer cursor.Close(ctx)

	var summary entity.RatingSummary
	if cursor.Next(ctx) {
		if err := cursor.Decode(&summary); err != nil {
			return entity.RatingSummary{}, translate(err, "decode rating summary")
		}
	}
	if err := cursor.Err(); err != nil {
		return entity.RatingSummary{}, translate(err, "aggregate ratings")
	}
	return summary, nil
}

// ReportRepository stores article reports, one per reporter and article.
type ReportRepository struct {
	collection *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{collection: db.Collection(ReportsCollection)}
}

var _ contract.IReportRepository = (*ReportRepository)(nil)

func (r *ReportRepository) CreateReport(ctx context.Context, report *entity.ArticleReport) error {
	_, err := r.collection.InsertOne(ctx, report)
	return translate(err, "create report")
}
