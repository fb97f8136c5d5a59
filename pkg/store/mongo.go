package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const chartsCollection = "charts"

// MongoStore is a MongoDB-backed record store for multi-instance
// server deployments.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at the given URI and uses the
// named database. The connection is verified with a ping.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(chartsCollection),
	}, nil
}

// Get retrieves a record by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find record: %w", err)
	}
	return &rec, nil
}

// List returns all records, newest first.
func (s *MongoStore) List(ctx context.Context) ([]*Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*Record
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return out, nil
}

// Put stores a record, upserting on ID.
func (s *MongoStore) Put(ctx context.Context, rec *Record) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec, opts); err != nil {
		return fmt.Errorf("store record: %w", err)
	}
	return nil
}

// Delete removes a record.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
