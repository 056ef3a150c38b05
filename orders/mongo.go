package orders

import (
	"context"

	"inkpress/db"
	"inkpress/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoBackend struct{}

func (mongoBackend) Insert(ctx context.Context, order models.Order) error {
	res, err := db.OrdersCollection.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	if res.InsertedID == nil {
		return ErrNoRecord
	}
	return nil
}

func (mongoBackend) FindByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var order models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderNumber": orderNumber}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
