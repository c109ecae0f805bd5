package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client            *mongo.Client
	UserCollection    *mongo.Collection
	ProductCollection *mongo.Collection
	CartCollection    *mongo.Collection
	OrderCollection   *mongo.Collection
)

// Init connects to MongoDB and wires the named collections. Called once
// from main; packages guard on nil collections so tests can run without
// a database.
func Init() error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	Client = client

	database := client.Database("garmentsdb")
	UserCollection = database.Collection("users")
	ProductCollection = database.Collection("products")
	CartCollection = database.Collection("carts")
	OrderCollection = database.Collection("orders")

	log.Println("Connected to MongoDB:", uri)
	return nil
}

// Close disconnects the client on shutdown.
func Close(ctx context.Context) {
	if Client == nil {
		return
	}
	if err := Client.Disconnect(ctx); err != nil {
		log.Println("Mongo disconnect error:", err)
	}
}
