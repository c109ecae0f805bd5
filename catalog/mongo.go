package catalog

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"garments/db"
	"garments/models"
	"garments/rdx"

	"go.mongodb.org/mongo-driver/bson"
)

const productCacheTTL = 10 * time.Minute

// Store reads products from MongoDB with a redis read-through cache.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) GetProduct(ctx context.Context, productID string) (models.Product, bool) {
	if cached, err := rdx.RdxGet("product:" + productID); err == nil {
		var p models.Product
		if err := json.Unmarshal([]byte(cached), &p); err == nil {
			return p, true
		}
	}

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&product); err != nil {
		return models.Product{}, false
	}

	if data, err := json.Marshal(product); err == nil {
		if err := rdx.RdxSet("product:"+productID, string(data), productCacheTTL); err != nil && err != rdx.ErrUnavailable {
			log.Println("Product cache write error:", err)
		}
	}
	return product, true
}

// List returns the full catalog, optionally filtered by category.
func (s *Store) List(ctx context.Context, category string) ([]models.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := db.ProductCollection.Find(ctx, filter)
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
