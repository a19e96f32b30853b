package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ArticlesCollection       = "articles"
	CategoriesCollection     = "categories"
	TagsCollection           = "tags"
	CommentsCollection       = "comments"
	CommentHistoryCollection = "comment_history"
	ReactionsCollection      = "reactions"
	FavoritesCollection      = "favorites"
	BookmarksCollection      = "bookmarks"
	RatingsCollection        = "ratings"
	ReportsCollection        = "article_reports"
)

func uniqueIndex(name string, keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name).SetUnique(true)}
}

func index(name string, keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name)}
}

// indexModels lists the indexes each collection needs. The unique indexes
// enforce the one-per-user invariants even without transactions.
func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		ReactionsCollection: {
			uniqueIndex("uniq_target_user", bson.D{{Key: "target_type", Value: 1}, {Key: "target_id", Value: 1}, {Key: "user_id", Value: 1}}),
			index("target_value", bson.D{{Key: "target_type", Value: 1}, {Key: "target_id", Value: 1}, {Key: "value", Value: 1}}),
		},
		ArticlesCollection: {
			uniqueIndex("uniq_slug", bson.D{{Key: "slug", Value: 1}}),
			index("author_created", bson.D{{Key: "author_username", Value: 1}, {Key: "created_at", Value: -1}}),
			index("tags", bson.D{{Key: "tags", Value: 1}}),
		},
		CategoriesCollection: {
			uniqueIndex("uniq_slug", bson.D{{Key: "slug", Value: 1}}),
		},
		TagsCollection: {
			uniqueIndex("uniq_name", bson.D{{Key: "name", Value: 1}}),
		},
		CommentsCollection: {
			index("article_created", bson.D{{Key: "article_id", Value: 1}, {Key: "created_at", Value: 1}}),
		},
		CommentHistoryCollection: {
			index("comment_updated", bson.D{{Key: "comment_id", Value: 1}, {Key: "updated_at", Value: 1}}),
		},
		FavoritesCollection: {
			uniqueIndex("uniq_user_article", bson.D{{Key: "user_id", Value: 1}, {Key: "article_id", Value: 1}}),
			index("article", bson.D{{Key: "article_id", Value: 1}}),
		},
		BookmarksCollection: {
			uniqueIndex("uniq_user_article", bson.D{{Key: "user_id", Value: 1}, {Key: "article_id", Value: 1}}),
		},
		RatingsCollection: {
			uniqueIndex("uniq_author_article", bson.D{{Key: "author_id", Value: 1}, {Key: "article_id", Value: 1}}),
			index("article", bson.D{{Key: "article_id", Value: 1}}),
		},
		ReportsCollection: {
			uniqueIndex("uniq_reporter_article", bson.D{{Key: "reporter_id", Value: 1}, {Key: "article_id", Value: 1}}),
		},
	}
}

// EnsureIndexes creates every index used by the repositories. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for coll, models := range indexModels() {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
