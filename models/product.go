package models

// Product is catalog data. Prices are whole rupees; stock counts are
// advisory display data, never enforced by the cart.
type Product struct {
	ProductID     string         `json:"productId" bson:"productid"`
	Name          string         `json:"name" bson:"name"`
	Category      string         `json:"category" bson:"category"`
	Price         int64          `json:"price" bson:"price"`
	OriginalPrice int64          `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	Stock         map[string]int `json:"stock" bson:"stock"` // size -> units
	Colors        []string       `json:"colors,omitempty" bson:"colors,omitempty"`
	ImagePath     string         `json:"imagePath,omitempty" bson:"imagePath,omitempty"`
}
