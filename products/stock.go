package products

import (
	"context"

	"kirana/db"
	"kirana/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdjustStock applies stock += delta as a single document update. The
// update is atomic per document only; it does not clamp at zero, so a
// stale basket or racing checkout can drive stock negative. Returns the
// updated document, or mongo.ErrNoDocuments if the product is gone.
func AdjustStock(ctx context.Context, productID string, delta int) (models.Product, error) {
	var product models.Product
	err := db.ProductCollection.FindOneAndUpdate(ctx,
		bson.M{"productid": productID},
		bson.M{"$inc": bson.M{"stock": delta}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	return product, err
}
