package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/flamesResource6/food-ordering-backend/config"
)

func runTestEndpoint(t *testing.T, c *HealthController) map[string]interface{} {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Test(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (diagnostic never fails outward)", rec.Code)
	}
	var status map[string]interface{}
	decodeBody(t, rec, &status)
	return status
}

func TestDiagnosticWithoutStore(t *testing.T) {
	c := NewHealthController(nil, &config.Config{})
	status := runTestEndpoint(t, c)

	if status["backend"] != "running" {
		t.Errorf("backend = %v, want running", status["backend"])
	}
	if status["database"] != "not available" {
		t.Errorf("database = %v, want not available", status["database"])
	}
	if status["connection_status"] != "not connected" {
		t.Errorf("connection_status = %v, want not connected", status["connection_status"])
	}
}

func TestDiagnosticWithStore(t *testing.T) {
	store := newMemStore()
	store.collections["menuitem"] = []bson.M{{"name": "Margherita"}}
	store.collections["order"] = []bson.M{}

	c := NewHealthController(store, &config.Config{DatabaseURL: "mongodb://localhost"})
	status := runTestEndpoint(t, c)

	if status["database"] != "connected" {
		t.Errorf("database = %v, want connected", status["database"])
	}
	if status["database_url"] != "set" {
		t.Errorf("database_url = %v, want set", status["database_url"])
	}
	if status["database_name"] != "food_ordering" {
		t.Errorf("database_name = %v, want food_ordering", status["database_name"])
	}

	names, ok := status["collections"].([]interface{})
	if !ok || len(names) != 2 {
		t.Errorf("collections = %v, want two names", status["collections"])
	}
}

func TestDiagnosticCollectionCap(t *testing.T) {
	store := newMemStore()
	for i := 0; i < 15; i++ {
		store.collections[string(rune('a'+i))] = []bson.M{}
	}

	c := NewHealthController(store, &config.Config{DatabaseURL: "mongodb://localhost"})
	status := runTestEndpoint(t, c)

	names, ok := status["collections"].([]interface{})
	if !ok {
		t.Fatalf("collections = %v, want a list", status["collections"])
	}
	if len(names) != 10 {
		t.Errorf("got %d collection names, want at most 10", len(names))
	}
}

func TestRootAndHello(t *testing.T) {
	c := NewHealthController(nil, &config.Config{})

	rec := httptest.NewRecorder()
	c.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	var root map[string]string
	decodeBody(t, rec, &root)
	if root["message"] != "Food Ordering Backend Running" {
		t.Errorf("root message = %q", root["message"])
	}

	rec = httptest.NewRecorder()
	c.Hello(rec, httptest.NewRequest(http.MethodGet, "/api/hello", nil))
	var hello map[string]string
	decodeBody(t, rec, &hello)
	if hello["message"] != "Hello from the backend API!" {
		t.Errorf("hello message = %q", hello["message"])
	}
}

func TestSchemaEndpoint(t *testing.T) {
	c := NewHealthController(nil, &config.Config{})

	rec := httptest.NewRecorder()
	c.Schema(rec, httptest.NewRequest(http.MethodGet, "/schema", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Schemas []struct {
			Kind       string `json:"kind"`
			Collection string `json:"collection"`
		} `json:"schemas"`
	}
	decodeBody(t, rec, &body)
	if len(body.Schemas) != 4 {
		t.Fatalf("got %d schemas, want 4", len(body.Schemas))
	}
}
