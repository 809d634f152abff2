package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultListLimit bounds reads when the caller does not ask for a limit.
const DefaultListLimit = 20

var (
	// ErrNotConnected means no store connection exists.
	ErrNotConnected = errors.New("database: not connected")
	// ErrPersist wraps a write the store rejected or failed.
	ErrPersist = errors.New("database: write failed")
)

// Store is the document persistence surface the controllers depend on.
// Identifiers are store-assigned and exposed only in hex string form.
type Store interface {
	Create(ctx context.Context, collection string, doc interface{}) (string, error)
	List(ctx context.Context, collection string, limit int64) ([]bson.M, error)
	ExistsAll(ctx context.Context, collection string, ids []primitive.ObjectID) (bool, error)
	CollectionNames(ctx context.Context) ([]string, error)
	Name() string
}

// Mongo implements Store on top of a single Mongo database.
type Mongo struct {
	db *mongo.Database
}

// Connect dials the store and verifies the connection with a ping.
func Connect(ctx context.Context, uri, name string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Mongo{db: client.Database(name)}, nil
}

func (m *Mongo) Name() string {
	if m == nil || m.db == nil {
		return ""
	}
	return m.db.Name()
}

// Create persists one document and returns the assigned identifier.
func (m *Mongo) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	if m == nil || m.db == nil {
		return "", ErrNotConnected
	}

	result, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersist, err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", result.InsertedID), nil
	}
	return oid.Hex(), nil
}

// List returns up to limit documents in store order. A collection with
// no documents yields an empty slice, not an error.
func (m *Mongo) List(ctx context.Context, collection string, limit int64) ([]bson.M, error) {
	if m == nil || m.db == nil {
		return nil, ErrNotConnected
	}
	if limit < 1 {
		limit = DefaultListLimit
	}

	cursor, err := m.db.Collection(collection).Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ExistsAll reports whether every id resolves to a document in the
// collection. Callers pass a de-duplicated set.
func (m *Mongo) ExistsAll(ctx context.Context, collection string, ids []primitive.ObjectID) (bool, error) {
	if m == nil || m.db == nil {
		return false, ErrNotConnected
	}
	if len(ids) == 0 {
		return true, nil
	}

	count, err := m.db.Collection(collection).CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return false, err
	}
	return count == int64(len(ids)), nil
}

func (m *Mongo) CollectionNames(ctx context.Context) ([]string, error) {
	if m == nil || m.db == nil {
		return nil, ErrNotConnected
	}
	return m.db.ListCollectionNames(ctx, bson.M{})
}
