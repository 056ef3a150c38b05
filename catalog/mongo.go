package catalog

import (
	"context"

	"inkpress/db"
	"inkpress/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoBackend struct{}

func (mongoBackend) Categories(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := db.CategoriesCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		categories = []models.Category{}
	}
	return categories, nil
}

func (mongoBackend) CategoryIDBySlug(ctx context.Context, slug string) (string, error) {
	var category models.Category
	err := db.CategoriesCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return category.CategoryID, nil
}

func (mongoBackend) Products(ctx context.Context, categoryID string) ([]models.Product, error) {
	filter := bson.M{}
	if categoryID != "" {
		filter["categoryId"] = categoryID
	}

	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := db.ProductsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		products = []models.Product{}
	}
	return products, nil
}

func (mongoBackend) FeaturedProducts(ctx context.Context, limit int64) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.M{"name": 1}).SetLimit(limit)
	cursor, err := db.ProductsCollection.Find(ctx, bson.M{"isFeatured": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		products = []models.Product{}
	}
	return products, nil
}

func (mongoBackend) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := db.ProductsCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (mongoBackend) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := db.ProductsCollection.FindOne(ctx, bson.M{"productId": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
