package models

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"shawarma-shop/config"
)

var (
	client *mongo.Client
	DB     *mongo.Database
	dbOnce sync.Once
)

// InitDB establishes the single shared Mongo connection for the process.
// The sync.Once guard makes repeated calls (and concurrent calls from the
// serverless entrypoint) reuse the already-memoized client instead of
// re-entering initialization.
func InitDB() {
	dbOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Client().
			ApplyURI(config.AppConfig.MongoURI).
			SetServerSelectionTimeout(10 * time.Second).
			SetMaxPoolSize(10).
			SetMinPoolSize(5).
			SetMaxConnIdleTime(30 * time.Second)

		var err error
		client, err = mongo.Connect(ctx, opts)
		if err != nil {
			log.Fatalf("MongoDB connection failed: %v", err)
		}

		if err = client.Ping(ctx, readpref.Primary()); err != nil {
			log.Fatalf("MongoDB ping failed: %v", err)
		}

		DB = client.Database(config.AppConfig.MongoDBName)
		log.Println("MongoDB connected successfully")
	})
}

// Collection resolves a collection lazily so repositories never capture a
// handle before InitDB has run.
func Collection(name string) *mongo.Collection {
	return DB.Collection(name)
}

func CloseDB() {
	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Println("MongoDB disconnect error:", err)
		}
	}
}
