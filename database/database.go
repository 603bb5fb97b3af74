package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB wraps the mongo client and the application database. It is constructed
// once at startup, handed to the repositories, and closed at shutdown.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect opens a client for the given connection string and verifies it
// with a ping. Failure here is fatal to the process.
func Connect(ctx context.Context, uri, dbName string) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{client: client, database: client.Database(dbName)}, nil
}

// Collection returns a handle to the named collection.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
