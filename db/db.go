package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	CategoriesCollection *mongo.Collection
	ProductsCollection   *mongo.Collection
	OrdersCollection     *mongo.Collection
	QuotesCollection     *mongo.Collection
	GalleryCollection    *mongo.Collection
	Client               *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("db: no .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("printdb")
	CategoriesCollection = database.Collection("categories")
	ProductsCollection = database.Collection("products")
	OrdersCollection = database.Collection("orders")
	QuotesCollection = database.Collection("quotes")
	GalleryCollection = database.Collection("gallery_items")
}
