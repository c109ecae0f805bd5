package catalog

import (
	"context"
	"log"

	"garments/db"
	"garments/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SeedProducts is the default apparel catalog, inserted on first boot.
func SeedProducts() []models.Product {
	return []models.Product{
		{ProductID: "gs-tee-classic", Name: "Classic Crew Tee", Category: "tshirts", Price: 799, OriginalPrice: 999,
			Stock: map[string]int{"S": 20, "M": 35, "L": 30, "XL": 12}, Colors: []string{"black", "white", "navy"}},
		{ProductID: "gs-tee-oversized", Name: "Oversized Street Tee", Category: "tshirts", Price: 999, OriginalPrice: 1299,
			Stock: map[string]int{"M": 25, "L": 25, "XL": 18}, Colors: []string{"olive", "beige"}},
		{ProductID: "gs-shirt-linen", Name: "Linen Resort Shirt", Category: "shirts", Price: 1899, OriginalPrice: 2399,
			Stock: map[string]int{"S": 10, "M": 16, "L": 14}, Colors: []string{"white", "sky"}},
		{ProductID: "gs-jeans-slim", Name: "Slim Fit Jeans", Category: "jeans", Price: 2499, OriginalPrice: 2999,
			Stock: map[string]int{"30": 12, "32": 20, "34": 15, "36": 6}, Colors: []string{"indigo", "black"}},
		{ProductID: "gs-jacket-denim", Name: "Denim Trucker Jacket", Category: "jackets", Price: 3499, OriginalPrice: 4199,
			Stock: map[string]int{"M": 8, "L": 10, "XL": 5}, Colors: []string{"mid-wash"}},
		{ProductID: "gs-kurta-festive", Name: "Festive Silk Kurta", Category: "ethnic", Price: 2999, OriginalPrice: 3599,
			Stock: map[string]int{"S": 6, "M": 12, "L": 12, "XL": 8}, Colors: []string{"maroon", "cream"}},
		{ProductID: "gs-hoodie-zip", Name: "Zip Fleece Hoodie", Category: "hoodies", Price: 1999, OriginalPrice: 2499,
			Stock: map[string]int{"M": 14, "L": 18, "XL": 10}, Colors: []string{"charcoal", "bottle-green"}},
	}
}

// EnsureSeed inserts the default catalog when the products collection is
// empty.
func EnsureSeed(ctx context.Context) error {
	count, err := db.ProductCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0)
	for _, p := range SeedProducts() {
		docs = append(docs, p)
	}
	if _, err := db.ProductCollection.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("Seeded %d catalog products", len(docs))
	return nil
}
