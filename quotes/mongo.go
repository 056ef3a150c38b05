package quotes

import (
	"context"

	"inkpress/db"
	"inkpress/models"
)

type mongoBackend struct{}

func (mongoBackend) Insert(ctx context.Context, quote models.Quote) error {
	res, err := db.QuotesCollection.InsertOne(ctx, quote)
	if err != nil {
		return err
	}
	if res.InsertedID == nil {
		return ErrNoRecord
	}
	return nil
}
