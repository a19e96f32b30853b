package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

type CategoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{collection: db.Collection(CategoriesCollection)}
}

var _ contract.ICategoryRepository = (*CategoryRepository)(nil)

func (r *CategoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	_, err := r.collection.InsertOne(ctx, category)
	return translate(err, "create category")
}

func (r *CategoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var category entity.Category
	if err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&category); err != nil {
		return nil, translate(err, "retrieve category")
	}
	return &category, nil
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, translate(err, "list categories")
	}
	defer cursor.Close(ctx)

	categories := []*entity.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, translate(err, "decode categories")
	}
	return categories, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, slug string, updates map[string]interface{}) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$set": updates})
	if err != nil {
		return translate(err, "update category")
	}
	if res.MatchedCount == 0 {
		return translate(mongo.ErrNoDocuments, "update category")
	}
	return nil
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, slug string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return translate(err, "delete category")
	}
	if res.DeletedCount == 0 {
		return translate(mongo.ErrNoDocuments, "delete category")
	}
	return nil
}
