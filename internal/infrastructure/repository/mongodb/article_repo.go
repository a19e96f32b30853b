package mongodb

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// ArticleRepository represents the MongoDB implementation of the IArticleRepository interface.
type ArticleRepository struct {
	collection *mongo.Collection
}

// NewArticleRepository creates and returns a new ArticleRepository instance.
func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{
		collection: db.Collection(ArticlesCollection),
	}
}

var _ contract.IArticleRepository = (*ArticleRepository)(nil)

// containsCI matches s anywhere in the field, case-insensitively.
func containsCI(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

// buildArticleFilter translates an ArticleFilter into a query document.
func buildArticleFilter(f contract.ArticleFilter) bson.M {
	filter := bson.M{}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}
	if f.Author != "" {
		filter["author_username"] = f.Author
	}
	if f.Title != "" {
		filter["title"] = containsCI(f.Title)
	}
	if f.FavoritedBy != "" {
		filter["author_username"] = f.FavoritedBy
		filter["favorited"] = true
	}
	if f.Search != "" {
		q := containsCI(f.Search)
		filter["$or"] = []bson.M{
			{"title": q},
			{"body": q},
			{"description": q},
			{"author_username": q},
			{"tags": q},
		}
	}
	return filter
}

func (r *ArticleRepository) CreateArticle(ctx context.Context, article *entity.Article) error {
	_, err := r.collection.InsertOne(ctx, article)
	return translate(err, "create article")
}

func (r *ArticleRepository) GetArticleByID(ctx context.Context, articleID string) (*entity.Article, error) {
	return r.findOne(ctx, bson.M{"_id": articleID})
}

func (r *ArticleRepository) GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *ArticleRepository) findOne(ctx context.Context, filter bson.M) (*entity.Article, error) {
	var article entity.Article
	if err := r.collection.FindOne(ctx, filter).Decode(&article); err != nil {
		return nil, translate(err, "retrieve article")
	}
	return &article, nil
}

// ListArticles returns the matching articles, newest first.
func (r *ArticleRepository) ListArticles(ctx context.Context, f contract.ArticleFilter) ([]*entity.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, buildArticleFilter(f), opts)
	if err != nil {
		return nil, translate(err, "list articles")
	}
	defer cursor.Close(ctx)

	articles := []*entity.Article{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, translate(err, "decode articles")
	}
	return articles, nil
}

func (r *ArticleRepository) UpdateArticle(ctx context.Context, articleID string, updates map[string]interface{}) error {
	res, err := r.collection.UpdateByID(ctx, articleID, bson.M{"$set": updates})
	if err != nil {
		return translate(err, "update article")
	}
	if res.MatchedCount == 0 {
		return translate(mongo.ErrNoDocuments, "update article")
	}
	return nil
}

func (r *ArticleRepository) DeleteArticle(ctx context.Context, articleID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": articleID})
	if err != nil {
		return translate(err, "delete article")
	}
	if res.DeletedCount == 0 {
		return translate(mongo.ErrNoDocuments, "delete article")
	}
	return nil
}

func (r *ArticleRepository) IncrementFavorites(ctx context.Context, articleID string) error {
	update := bson.M{
		"$inc": bson.M{"favorites_count": 1},
		"$set": bson.M{"favorited": true},
	}
	return r.updateCounter(ctx, articleID, update, "increment favorites")
}

// decrementFavoritesPipeline lowers the counter without going below zero and
// derives favorited from the result in the same update.
var decrementFavoritesPipeline = mongo.Pipeline{
	{{Key: "$set", Value: bson.M{
		"favorites_count": bson.M{"$max": bson.A{0, bson.M{"$subtract": bson.A{"$favorites_count", 1}}}},
	}}},
	{{Key: "$set", Value: bson.M{
		"favorited": bson.M{"$gt": bson.A{"$favorites_count", 0}},
	}}},
}

func (r *ArticleRepository) DecrementFavorites(ctx context.Context, articleID string) error {
	return r.updateCounter(ctx, articleID, decrementFavoritesPipeline, "decrement favorites")
}

func (r *ArticleRepository) updateCounter(ctx context.Context, articleID string, update interface{}, op string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": articleID}, update)
	if err != nil {
		return translate(err, op)
	}
	if res.MatchedCount == 0 {
		return translate(mongo.ErrNoDocuments, op)
	}
	return nil
}
