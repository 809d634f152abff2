package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sort"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flamesResource6/food-ordering-backend/database"
)

// memStore is an in-memory database.Store for handler tests. Documents
// are stored the way the driver would hand them back, as bson maps.
type memStore struct {
	collections map[string][]bson.M
	failCreate  bool
}

func newMemStore() *memStore {
	return &memStore{collections: map[string][]bson.M{}}
}

func (s *memStore) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.failCreate {
		return "", fmt.Errorf("%w: simulated write failure", database.ErrPersist)
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", err
	}

	oid := primitive.NewObjectID()
	m["_id"] = oid
	s.collections[collection] = append(s.collections[collection], m)
	return oid.Hex(), nil
}

func (s *memStore) List(ctx context.Context, collection string, limit int64) ([]bson.M, error) {
	if limit < 1 {
		limit = database.DefaultListLimit
	}
	docs := s.collections[collection]
	if int64(len(docs)) > limit {
		docs = docs[:limit]
	}

	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		dup := bson.M{}
		for k, v := range doc {
			dup[k] = v
		}
		out = append(out, dup)
	}
	return out, nil
}

func (s *memStore) ExistsAll(ctx context.Context, collection string, ids []primitive.ObjectID) (bool, error) {
	existing := map[primitive.ObjectID]bool{}
	for _, doc := range s.collections[collection] {
		if oid, ok := doc["_id"].(primitive.ObjectID); ok {
			existing[oid] = true
		}
	}
	for _, id := range ids {
		if !existing[id] {
			return false, nil
		}
	}
	return true, nil
}

func (s *memStore) CollectionNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *memStore) Name() string { return "food_ordering" }

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}
