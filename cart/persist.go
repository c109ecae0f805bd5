package cart

import (
	"context"
	"log"
	"time"

	"garments/db"
	"garments/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Cart snapshots are write-behind convenience persistence: the in-memory
// service stays authoritative, and a lost snapshot only costs a warm-up
// from an empty cart.

func loadSnapshot(userID string) (models.CartSnapshot, bool) {
	if db.CartCollection == nil {
		return models.CartSnapshot{}, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var snap models.CartSnapshot
	if err := db.CartCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&snap); err != nil {
		return models.CartSnapshot{}, false
	}
	return snap, true
}

func saveSnapshot(snap models.CartSnapshot) {
	if db.CartCollection == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Replace().SetUpsert(true)
		if _, err := db.CartCollection.ReplaceOne(ctx, bson.M{"userId": snap.UserID}, snap, opts); err != nil {
			log.Println("Cart snapshot save error:", err)
		}
	}()
}
