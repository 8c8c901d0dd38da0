package orders

import (
	"context"

	"kirana/db"
	"kirana/models"
	"kirana/products"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// catalogStock adapts the products package to the StockAdjuster port.
type catalogStock struct{}

func (catalogStock) AdjustStock(ctx context.Context, productID string, delta int) (models.Product, error) {
	product, err := products.AdjustStock(ctx, productID, delta)
	if err == mongo.ErrNoDocuments {
		return models.Product{}, ErrProductNotFound
	}
	return product, err
}

// mongoStore persists orders in the orders collection.
type mongoStore struct{}

func (mongoStore) Insert(ctx context.Context, order models.Order) error {
	_, err := db.OrderCollection.InsertOne(ctx, order)
	return err
}

func (mongoStore) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	cursor, err := db.OrderCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Order
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Order{}
	}
	return list, nil
}

func (mongoStore) FindByID(ctx context.Context, orderID string) (models.Order, error) {
	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return models.Order{}, ErrOrderNotFound
	}
	return order, err
}

func (mongoStore) FindAll(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.OrderCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Order
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Order{}
	}
	return list, nil
}

func (mongoStore) SetStatus(ctx context.Context, orderID, status string) (models.Order, error) {
	var order models.Order
	err := db.OrderCollection.FindOneAndUpdate(ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return models.Order{}, ErrOrderNotFound
	}
	return order, err
}
